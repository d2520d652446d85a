package generation

import (
	"fmt"
	"strings"
)

const narrativeSystemPrompt = `You are a fantasy character writer for a collectible hero game. ` +
	`Given an archetype, invent an original character. Respond with a single JSON object ` +
	`with exactly these keys: "name" (a distinctive character name), "backstory" (their history), ` +
	`"appearance" (a concrete visual description suitable for an illustrator), and ` +
	`"personality" (a one-line temperament summary). Respond with JSON only.`

func narrativeUserPrompt(input *NarrativeInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a %s.", input.Archetype)
	if input.Tone != "" {
		fmt.Fprintf(&b, " Tone: %s.", input.Tone)
	}
	if input.Length != "" {
		fmt.Fprintf(&b, " Backstory length: %s.", input.Length)
	}
	return b.String()
}

func portraitPrompt(description string) string {
	return fmt.Sprintf(
		"Fantasy character portrait, head and shoulders, painterly digital art, dramatic lighting. %s",
		description)
}
