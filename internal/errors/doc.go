// Package errors provides structured error handling for the character
// lifecycle service.
//
// Every error carries a stable machine-readable Code, a human-readable
// message, an optional wrapped cause, and free-form metadata. The code set
// combines generic service codes (NOT_FOUND, INVALID_ARGUMENT, ...) with the
// lifecycle taxonomy: GENERATION_FAILED for narrative/portrait failures,
// PUBLISH_FAILED for content-storage failures, and LEDGER_FAILED for
// rejected or timed-out on-chain transactions.
//
// Creation saga errors additionally carry the failing stage under the
// MetaStage metadata key:
//
//	if errors.IsGenerationFailed(err) && errors.GetStage(err) == "portrait" {
//	    // portrait generation failed; retry the whole saga
//	}
//
// Use the ValidationBuilder to accumulate field-level input errors:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("ownerAddress", input.OwnerAddress, vb)
//	errors.ValidateNonNegative("amount", input.Amount, vb)
//	if err := vb.Build(); err != nil {
//	    return nil, err
//	}
package errors
