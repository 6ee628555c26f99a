package services

import (
	"sort"
	"strconv"
	"time"

	"airbnb-etl/models"
	"airbnb-etl/utils"
)

// maxLoggedRowErrors bounds per-row error logging so a pathological input
// file cannot flood the log.
const maxLoggedRowErrors = 5

// Pipeline drives one cleaning run: it applies the Transformer to every raw
// row in input order, tallies accepted/rejected/errored rows, and optionally
// re-sorts the accepted set by numeric id with 1-based sequential ids.
// It performs no I/O; readers and sinks live in the storage package.
type Pipeline struct {
	transformer *Transformer
	logger      *utils.Logger

	// workers > 1 transforms rows on a worker pool. Rows are independent,
	// and outcomes are folded back in input order, so the output is
	// identical to a sequential run.
	workers int

	// assignSequentialIDs enables the post-processing sort stage.
	assignSequentialIDs bool
}

// NewPipeline creates a Pipeline around the given transformer.
func NewPipeline(transformer *Transformer, logger *utils.Logger, workers int, assignSequentialIDs bool) *Pipeline {
	if workers < 1 {
		workers = 1
	}
	return &Pipeline{
		transformer:         transformer,
		logger:              logger,
		workers:             workers,
		assignSequentialIDs: assignSequentialIDs,
	}
}

type rowResult struct {
	rec     *models.CleanedRecord
	outcome Outcome
	err     error
}

// Run processes the full raw row sequence and returns the PipelineResult.
// Counters are local to this invocation; concurrent Runs share no state.
func (p *Pipeline) Run(rows []models.RawRecord) *models.PipelineResult {
	start := time.Now()
	result := &models.PipelineResult{
		Raw:     len(rows),
		Records: make([]*models.CleanedRecord, 0, len(rows)),
	}

	for i, rr := range p.transformAll(rows) {
		switch rr.outcome {
		case OutcomeAccepted:
			result.Accepted++
			result.Records = append(result.Records, rr.rec)
		case OutcomeRejected:
			result.Rejected++
		case OutcomeErrored:
			result.Errored++
			if result.Errored <= maxLoggedRowErrors {
				p.logger.Warn("[pipeline] row %d dropped: %v", i, rr.err)
			}
		}
	}
	if result.Errored > maxLoggedRowErrors {
		p.logger.Warn("[pipeline] %d further row errors suppressed", result.Errored-maxLoggedRowErrors)
	}

	if p.assignSequentialIDs {
		assignSequentialIDs(result.Records)
	}

	result.Elapsed = time.Since(start)
	p.logger.Info("[pipeline] %d raw → %d accepted (%d rejected, %d errored) in %s",
		result.Raw, result.Accepted, result.Rejected, result.Errored, result.Elapsed)
	return result
}

// transformAll transforms every row, sequentially or on the worker pool.
// results[i] always belongs to rows[i], so folding stays in input order.
func (p *Pipeline) transformAll(rows []models.RawRecord) []rowResult {
	results := make([]rowResult, len(rows))

	if p.workers <= 1 {
		for i, raw := range rows {
			rec, outcome, err := p.transformer.Transform(raw)
			results[i] = rowResult{rec, outcome, err}
		}
		return results
	}

	pool := utils.NewWorkerPool(p.workers)
	for i, raw := range rows {
		i, raw := i, raw
		pool.Submit(func() {
			rec, outcome, err := p.transformer.Transform(raw)
			results[i] = rowResult{rec, outcome, err}
		})
	}
	pool.Wait()
	return results
}

// assignSequentialIDs sorts records by the numeric value of their id
// (non-numeric ids sort as 0) and numbers them 1..n.
func assignSequentialIDs(records []*models.CleanedRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return numericID(records[i].ID) < numericID(records[j].ID)
	})
	for i, rec := range records {
		rec.SequentialID = i + 1
	}
}

func numericID(id string) int {
	if id == "" {
		return 0
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return 0
		}
	}
	n, err := strconv.Atoi(id)
	if err != nil {
		return 0
	}
	return n
}
