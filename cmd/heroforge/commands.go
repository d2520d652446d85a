package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heroforge/heroforge-api/internal/entities"
	charactersvc "github.com/heroforge/heroforge-api/internal/services/character"
)

var (
	createOwner  string
	createTone   string
	createLength string

	grantAmount int64

	evolveArchetype string
	evolveTone      string

	transferTo string

	listPage     int
	listPageSize int

	powerBonus uint64
)

var createCmd = &cobra.Command{
	Use:   "create <archetype>",
	Short: "Create a character: roll stats, generate narrative and portrait, publish, mint",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		archetype, ok := entities.ParseArchetype(args[0])
		if !ok {
			return fmt.Errorf("unknown archetype %q, must be one of: %s",
				args[0], strings.Join(entities.ArchetypeNames(), ", "))
		}

		svc, err := newService()
		if err != nil {
			return err
		}

		out, err := svc.CreateCharacter(cmd.Context(), &charactersvc.CreateCharacterInput{
			OwnerAddress: createOwner,
			Archetype:    archetype,
			Tone:         createTone,
			Length:       createLength,
		})
		if err != nil {
			return err
		}
		return printJSON(out)
	},
}

var grantCmd = &cobra.Command{
	Use:   "grant <token-id>",
	Short: "Grant experience to a character",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tokenID, err := parseTokenID(args[0])
		if err != nil {
			return err
		}

		svc, err := newService()
		if err != nil {
			return err
		}

		out, err := svc.GrantExperience(cmd.Context(), &charactersvc.GrantExperienceInput{
			TokenID: tokenID,
			Amount:  grantAmount,
		})
		if err != nil {
			return err
		}
		if !out.Granted {
			fmt.Println("record is retired; no experience granted")
		}
		return printJSON(out)
	},
}

var evolveCmd = &cobra.Command{
	Use:   "evolve <token-id>",
	Short: "Retire an eligible character and mint its successor",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tokenID, err := parseTokenID(args[0])
		if err != nil {
			return err
		}
		archetype, ok := entities.ParseArchetype(evolveArchetype)
		if !ok {
			return fmt.Errorf("unknown archetype %q, must be one of: %s",
				evolveArchetype, strings.Join(entities.ArchetypeNames(), ", "))
		}

		svc, err := newService()
		if err != nil {
			return err
		}

		out, err := svc.EvolveCharacter(cmd.Context(), &charactersvc.EvolveCharacterInput{
			TokenID:   tokenID,
			Archetype: archetype,
			Tone:      evolveTone,
		})
		if err != nil {
			return err
		}
		return printJSON(out)
	},
}

var transferCmd = &cobra.Command{
	Use:   "transfer <token-id>",
	Short: "Transfer a character to a new owner",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tokenID, err := parseTokenID(args[0])
		if err != nil {
			return err
		}

		svc, err := newService()
		if err != nil {
			return err
		}

		out, err := svc.TransferCharacter(cmd.Context(), &charactersvc.TransferCharacterInput{
			TokenID: tokenID,
			To:      transferTo,
		})
		if err != nil {
			return err
		}
		return printJSON(out)
	},
}

var showCmd = &cobra.Command{
	Use:   "show <token-id>",
	Short: "Show a character's on-chain record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tokenID, err := parseTokenID(args[0])
		if err != nil {
			return err
		}

		svc, err := newService()
		if err != nil {
			return err
		}

		out, err := svc.GetCharacter(cmd.Context(), &charactersvc.GetCharacterInput{TokenID: tokenID})
		if err != nil {
			return err
		}
		return printJSON(out.Record)
	},
}

var listCmd = &cobra.Command{
	Use:   "list <owner-address>",
	Short: "List the characters an address owns",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}

		out, err := svc.ListCharacters(cmd.Context(), &charactersvc.ListCharactersInput{
			Owner:    args[0],
			Page:     listPage,
			PageSize: listPageSize,
		})
		if err != nil {
			return err
		}
		return printJSON(out)
	},
}

var powerCmd = &cobra.Command{
	Use:   "power <token-id>",
	Short: "Compute a character's effective power",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tokenID, err := parseTokenID(args[0])
		if err != nil {
			return err
		}

		svc, err := newService()
		if err != nil {
			return err
		}

		out, err := svc.GetPower(cmd.Context(), &charactersvc.GetPowerInput{
			TokenID:       tokenID,
			SeasonalBonus: powerBonus,
		})
		if err != nil {
			return err
		}
		return printJSON(out)
	},
}

var seasonCmd = &cobra.Command{
	Use:   "season",
	Short: "Season administration",
}

var seasonShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current season",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}

		out, err := svc.GetCurrentSeason(cmd.Context(), &charactersvc.GetCurrentSeasonInput{})
		if err != nil {
			return err
		}
		return printJSON(out)
	},
}

var seasonAdvanceCmd = &cobra.Command{
	Use:   "advance",
	Short: "Advance the global season counter (admin)",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}

		out, err := svc.AdvanceSeason(cmd.Context(), &charactersvc.AdvanceSeasonInput{})
		if err != nil {
			return err
		}
		return printJSON(out)
	},
}

func parseTokenID(arg string) (uint64, error) {
	var tokenID uint64
	if _, err := fmt.Sscanf(arg, "%d", &tokenID); err != nil || tokenID == 0 {
		return 0, fmt.Errorf("invalid token id %q", arg)
	}
	return tokenID, nil
}

func init() {
	createCmd.Flags().StringVar(&createOwner, "owner", "", "owner address (required)")
	createCmd.Flags().StringVar(&createTone, "tone", "", "narrative tone, e.g. heroic, grim")
	createCmd.Flags().StringVar(&createLength, "length", "", "backstory length hint, e.g. short")
	_ = createCmd.MarkFlagRequired("owner")

	grantCmd.Flags().Int64Var(&grantAmount, "amount", 0, "experience to grant (required)")
	_ = grantCmd.MarkFlagRequired("amount")

	evolveCmd.Flags().StringVar(&evolveArchetype, "archetype", "", "successor archetype (required)")
	evolveCmd.Flags().StringVar(&evolveTone, "tone", "", "narrative tone for the successor")
	_ = evolveCmd.MarkFlagRequired("archetype")

	transferCmd.Flags().StringVar(&transferTo, "to", "", "recipient address (required)")
	_ = transferCmd.MarkFlagRequired("to")

	listCmd.Flags().IntVar(&listPage, "page", 1, "1-based page number")
	listCmd.Flags().IntVar(&listPageSize, "page-size", 20, "results per page")

	powerCmd.Flags().Uint64Var(&powerBonus, "seasonal-bonus", 0, "seasonal bonus to apply")

	seasonCmd.AddCommand(seasonShowCmd)
	seasonCmd.AddCommand(seasonAdvanceCmd)
}
