package migrator

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"github.com/oportunidadeshoy/migration-tools/internal/fixtures"
	"github.com/oportunidadeshoy/migration-tools/internal/repositories"
	"github.com/oportunidadeshoy/migration-tools/internal/utils"
)

// Fixture file names expected under the fixtures directory. A missing file
// is not an error: the corresponding step is skipped with a warning.
const (
	ConfigurationFile = "configuracion.json"
	NumbersFile       = "numeros.json"
	SchedulesFile     = "horarios_zulia.json"
	WinnersFile       = "ganadores.json"
	PrizesFile        = "premios.json"
	SalesFile         = "ventas.json"
	ResultsFile       = "resultados_zulia.json"
	ReceiptsFile      = "comprobantes.json"
)

// Destination collections, matched one to one with the fixture files.
const (
	configurationCollection = "configuracion"
	numbersCollection       = "numeros"
	schedulesCollection     = "horarios_zulia"
	winnersCollection       = "ganadores"
	prizesCollection        = "premios"
	salesCollection         = "ventas"
	resultsCollection       = "resultados_zulia"
	receiptsCollection      = "comprobantes"
)

const (
	configurationDocID = "general"
	prizesDocID        = "general"
	schedulesDocID     = "horarios_principales"
	schedulesField     = "horarios"
	numberKeyField     = "numero"
)

// DefaultBatchSize is the number of writes committed per batch when the
// configuration does not say otherwise.
const DefaultBatchSize = 500

// Result records the outcome of a single migration step. Err is only set
// when the fixture itself could not be loaded; write failures are counted
// in Failed instead.
type Result struct {
	Fixture    string
	Collection string
	Total      int
	Written    int
	Failed     int
	Skipped    int
	Err        error
}

// Migrator loads the lottery fixtures and writes them to the destination
// database through a DocumentRepository.
type Migrator struct {
	repo        repositories.DocumentRepository
	fixturesDir string
	batchSize   int
	runID       string
}

// New creates a Migrator reading fixtures from fixturesDir. A batchSize
// below 1 falls back to DefaultBatchSize.
func New(repo repositories.DocumentRepository, fixturesDir string, batchSize int) *Migrator {
	if batchSize < 1 {
		batchSize = DefaultBatchSize
	}
	return &Migrator{
		repo:        repo,
		fixturesDir: fixturesDir,
		batchSize:   batchSize,
		runID:       uuid.NewString(),
	}
}

// Run executes every migration step in order and returns one Result per
// step. Steps are independent: a failure in one never stops the others.
func (m *Migrator) Run(ctx context.Context) []Result {
	slog.Info("Starting fixture migration", "runId", m.runID, "fixturesDir", m.fixturesDir, "batchSize", m.batchSize)

	results := []Result{
		// 1. General configuration, a single document
		m.migrateDocument(ctx, ConfigurationFile, configurationCollection, configurationDocID),
		// 2. Lottery numbers, batched and keyed by the number itself
		m.migrateBatched(ctx, NumbersFile, numbersCollection, numberKeyField),
		// 3. Draw schedules, wrapped into a single document
		m.migrateSchedules(ctx),
		// 4. Winners, one record at a time
		m.migrateEach(ctx, WinnersFile, winnersCollection),
		// 5. Prize table, a single document
		m.migrateDocument(ctx, PrizesFile, prizesCollection, prizesDocID),
		// 6. Sales, batched with destination-assigned IDs
		m.migrateBatched(ctx, SalesFile, salesCollection, ""),
		// 7. Draw results, one record at a time
		m.migrateEach(ctx, ResultsFile, resultsCollection),
		// 8. Payment receipts, one record at a time
		m.migrateEach(ctx, ReceiptsFile, receiptsCollection),
	}

	var written, failed, skipped int
	for _, r := range results {
		written += r.Written
		failed += r.Failed
		skipped += r.Skipped
	}
	slog.Info("Fixture migration finished",
		"runId", m.runID,
		"written", written,
		"failed", failed,
		"skipped", skipped,
		"finishedAt", utils.FormatTimestamp(utils.VenezuelaTime()))

	return results
}

// migrateDocument writes a whole fixture object as one document with a
// fixed ID, replacing any previous version.
func (m *Migrator) migrateDocument(ctx context.Context, file, collection, docID string) Result {
	res := Result{Fixture: file, Collection: collection}

	doc, err := fixtures.LoadObject(m.path(file))
	if err != nil {
		m.loadFailed(&res, err)
		return res
	}
	if len(doc) == 0 {
		slog.Warn("Fixture has no fields, skipping", "fixture", file, "collection", collection)
		return res
	}

	res.Total = 1
	if err := m.repo.Set(ctx, collection, docID, doc); err != nil {
		slog.Error("Failed to write document", "fixture", file, "collection", collection, "docId", docID, "error", err)
		res.Failed = 1
		return res
	}
	res.Written = 1
	slog.Info("Document migrated", "fixture", file, "collection", collection, "docId", docID)
	return res
}

// migrateSchedules wraps the schedule list under a single field of one
// document, so the destination keeps the list exactly as the fixture has it.
func (m *Migrator) migrateSchedules(ctx context.Context) Result {
	res := Result{Fixture: SchedulesFile, Collection: schedulesCollection}

	list, err := fixtures.LoadList(m.path(SchedulesFile))
	if err != nil {
		m.loadFailed(&res, err)
		return res
	}
	if len(list) == 0 {
		slog.Warn("Fixture has no records, skipping", "fixture", SchedulesFile, "collection", schedulesCollection)
		return res
	}

	res.Total = 1
	doc := map[string]interface{}{schedulesField: list}
	if err := m.repo.Set(ctx, schedulesCollection, schedulesDocID, doc); err != nil {
		slog.Error("Failed to write document", "fixture", SchedulesFile, "collection", schedulesCollection, "docId", schedulesDocID, "error", err)
		res.Failed = 1
		return res
	}
	res.Written = 1
	slog.Info("Document migrated", "fixture", SchedulesFile, "collection", schedulesCollection, "docId", schedulesDocID, "schedules", len(list))
	return res
}

// migrateBatched writes fixture records in batches. When keyField is set,
// each record is keyed by that field's value and replaces any previous
// document with the same key. When it is empty the destination assigns IDs.
func (m *Migrator) migrateBatched(ctx context.Context, file, collection, keyField string) Result {
	res := Result{Fixture: file, Collection: collection}

	records, err := fixtures.LoadRecords(m.path(file))
	if err != nil {
		m.loadFailed(&res, err)
		return res
	}
	if len(records) == 0 {
		slog.Warn("Fixture has no records, skipping", "fixture", file, "collection", collection)
		return res
	}
	res.Total = len(records)

	writes := make([]repositories.Write, 0, len(records))
	for _, record := range records {
		if keyField == "" {
			writes = append(writes, repositories.Write{Doc: record})
			continue
		}
		id, ok := record[keyField].(string)
		if !ok || id == "" {
			slog.Warn("Record has no usable key, skipping", "fixture", file, "collection", collection, "keyField", keyField, "record", record)
			res.Skipped++
			continue
		}
		writes = append(writes, repositories.Write{ID: id, Doc: record})
	}

	for i, batch := range chunk(writes, m.batchSize) {
		if err := m.repo.CommitBatch(ctx, collection, batch); err != nil {
			slog.Error("Failed to commit batch", "fixture", file, "collection", collection, "batch", i+1, "records", len(batch), "error", err)
			res.Failed += len(batch)
			continue
		}
		res.Written += len(batch)
		slog.Info("Batch committed", "fixture", file, "collection", collection, "batch", i+1, "records", len(batch), "written", res.Written)
	}
	return res
}

// migrateEach writes fixture records one at a time, so a bad record only
// costs itself.
func (m *Migrator) migrateEach(ctx context.Context, file, collection string) Result {
	res := Result{Fixture: file, Collection: collection}

	records, err := fixtures.LoadRecords(m.path(file))
	if err != nil {
		m.loadFailed(&res, err)
		return res
	}
	if len(records) == 0 {
		slog.Warn("Fixture has no records, skipping", "fixture", file, "collection", collection)
		return res
	}
	res.Total = len(records)

	for _, record := range records {
		if err := m.repo.Add(ctx, collection, record); err != nil {
			slog.Error("Failed to write record", "fixture", file, "collection", collection, "record", record, "error", err)
			res.Failed++
			continue
		}
		res.Written++
	}
	slog.Info("Records migrated", "fixture", file, "collection", collection, "written", res.Written, "failed", res.Failed)
	return res
}

// loadFailed logs a load error and records it on res, except for the two
// skippable conditions: a missing fixture file and an empty one.
func (m *Migrator) loadFailed(res *Result, err error) {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		slog.Warn("Fixture not found, skipping", "fixture", res.Fixture, "collection", res.Collection)
	case errors.Is(err, fixtures.ErrEmpty):
		slog.Warn("Fixture is empty, skipping", "fixture", res.Fixture, "collection", res.Collection)
	default:
		slog.Error("Failed to load fixture", "fixture", res.Fixture, "collection", res.Collection, "error", err)
		res.Err = err
	}
}

func (m *Migrator) path(file string) string {
	return filepath.Join(m.fixturesDir, file)
}

// chunk splits writes into consecutive slices of at most size elements,
// preserving order.
func chunk(writes []repositories.Write, size int) [][]repositories.Write {
	var batches [][]repositories.Write
	for len(writes) > size {
		batches = append(batches, writes[:size])
		writes = writes[size:]
	}
	if len(writes) > 0 {
		batches = append(batches, writes)
	}
	return batches
}
