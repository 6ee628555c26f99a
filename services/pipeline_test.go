package services

import (
	"reflect"
	"testing"

	"airbnb-etl/config"
	"airbnb-etl/models"
	"airbnb-etl/utils"
)

func newTestPipeline(workers int, assignSeq bool) *Pipeline {
	return NewPipeline(newTestTransformer(), utils.NewLogger(), workers, assignSeq)
}

func endToEndRows() []models.RawRecord {
	return []models.RawRecord{
		{
			"id": "10", "name": "Premium suite", "price": "$1,200.50",
			"accommodates": "4", "host_listings_count": "5",
		},
		{"id": "11", "name": "Free room", "price": "0"},
		{"id": "", "name": "No id", "price": "50"},
	}
}

func TestPipelineEndToEnd(t *testing.T) {
	result := newTestPipeline(1, false).Run(endToEndRows())

	if result.Raw != 3 {
		t.Errorf("Raw = %d; want 3", result.Raw)
	}
	if result.Accepted != 1 || len(result.Records) != 1 {
		t.Fatalf("Accepted = %d (%d records); want exactly 1", result.Accepted, len(result.Records))
	}
	if result.Rejected != 2 {
		t.Errorf("Rejected = %d; want 2", result.Rejected)
	}
	if result.Errored != 0 {
		t.Errorf("Errored = %d; want 0", result.Errored)
	}

	rec := result.Records[0]
	if rec.ID != "10" {
		t.Errorf("ID = %q; want 10", rec.ID)
	}
	if rec.Price != 1200.5 {
		t.Errorf("Price = %v; want 1200.5", rec.Price)
	}
	if rec.PriceCategory != "luxury" {
		t.Errorf("PriceCategory = %q; want luxury", rec.PriceCategory)
	}
	if rec.IsProfessionalHost != 1 {
		t.Errorf("IsProfessionalHost = %d; want 1", rec.IsProfessionalHost)
	}
	if rec.PricePerGuest != 300.13 {
		t.Errorf("PricePerGuest = %v; want 300.13", rec.PricePerGuest)
	}
}

func TestPipelineCountersAreLocalToRun(t *testing.T) {
	p := newTestPipeline(1, false)

	first := p.Run(endToEndRows())
	second := p.Run(endToEndRows())

	if second.Accepted != first.Accepted || second.Rejected != first.Rejected {
		t.Errorf("second run counters %d/%d differ from first %d/%d",
			second.Accepted, second.Rejected, first.Accepted, first.Rejected)
	}
}

func TestPipelineSequentialIDAssignment(t *testing.T) {
	rows := []models.RawRecord{
		{"id": "12", "name": "c", "price": "30"},
		{"id": "3", "name": "a", "price": "30"},
		{"id": "abc", "name": "b", "price": "30"},
	}

	result := newTestPipeline(1, true).Run(rows)
	if len(result.Records) != 3 {
		t.Fatalf("got %d records; want 3", len(result.Records))
	}

	// Non-numeric ids sort as 0, then ascending numeric order.
	wantOrder := []string{"abc", "3", "12"}
	for i, rec := range result.Records {
		if rec.ID != wantOrder[i] {
			t.Errorf("record %d: ID = %q; want %q", i, rec.ID, wantOrder[i])
		}
		if rec.SequentialID != i+1 {
			t.Errorf("record %d: SequentialID = %d; want %d", i, rec.SequentialID, i+1)
		}
	}
}

func TestPipelineSequentialIDDisabled(t *testing.T) {
	result := newTestPipeline(1, false).Run(endToEndRows())
	if result.Records[0].SequentialID != 0 {
		t.Errorf("SequentialID = %d; want 0 when disabled", result.Records[0].SequentialID)
	}
}

func TestPipelineParallelMatchesSequential(t *testing.T) {
	rows := make([]models.RawRecord, 0, 60)
	for i := 0; i < 20; i++ {
		rows = append(rows, endToEndRows()...)
	}

	sequential := newTestPipeline(1, false).Run(rows)
	parallel := newTestPipeline(4, false).Run(rows)

	if parallel.Accepted != sequential.Accepted ||
		parallel.Rejected != sequential.Rejected ||
		parallel.Errored != sequential.Errored {
		t.Fatalf("parallel counters %d/%d/%d differ from sequential %d/%d/%d",
			parallel.Accepted, parallel.Rejected, parallel.Errored,
			sequential.Accepted, sequential.Rejected, sequential.Errored)
	}

	if len(parallel.Records) != len(sequential.Records) {
		t.Fatalf("record counts differ: %d vs %d", len(parallel.Records), len(sequential.Records))
	}
	for i := range sequential.Records {
		if !reflect.DeepEqual(*sequential.Records[i], *parallel.Records[i]) {
			t.Errorf("record %d differs between sequential and parallel runs", i)
		}
	}
}

func TestPipelineDeterministic(t *testing.T) {
	rows := endToEndRows()

	first := newTestPipeline(1, true).Run(rows)
	second := newTestPipeline(1, true).Run(rows)

	if len(first.Records) != len(second.Records) {
		t.Fatalf("record counts differ: %d vs %d", len(first.Records), len(second.Records))
	}
	for i := range first.Records {
		a := first.Records[i].Row(true)
		b := second.Records[i].Row(true)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("record %d differs between identical runs:\n%v\n%v", i, a, b)
		}
	}
}

func TestPipelineEmptyInput(t *testing.T) {
	result := newTestPipeline(1, false).Run(nil)
	if result.Raw != 0 || result.Accepted != 0 || len(result.Records) != 0 {
		t.Errorf("empty input: got raw=%d accepted=%d records=%d; want all zero",
			result.Raw, result.Accepted, len(result.Records))
	}
}

func TestPipelineRespectsRules(t *testing.T) {
	rules := config.DefaultRules()
	rules.MaxPrice = 100
	p := NewPipeline(NewTransformer(rules), utils.NewLogger(), 1, false)

	rows := []models.RawRecord{
		{"id": "1", "name": "cheap", "price": "99"},
		{"id": "2", "name": "pricey", "price": "101"},
	}
	result := p.Run(rows)

	if result.Accepted != 1 || result.Rejected != 1 {
		t.Errorf("accepted=%d rejected=%d; want 1/1 with max price 100",
			result.Accepted, result.Rejected)
	}
}
