package domain

// BatchStats is the outcome of one background batch run.
type BatchStats struct {
	Processed int
	Failed    int
	Skipped   int
}
