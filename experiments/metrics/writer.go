package metrics

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
)

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID
	Agent2 int // AgentConfig.ID
	GameMetric
}

type EpisodeRecord struct {
	RunID string
	EpisodeMetric
}

// episodeRow is the parquet layout of an EpisodeRecord.
type episodeRow struct {
	RunID         string `parquet:"run_id,dict"`
	Episode       int32  `parquet:"episode"`
	Steps         int32  `parquet:"steps"`
	Captures      int32  `parquet:"captures"`
	MoverStore    int32  `parquet:"mover_store"`
	OpponentStore int32  `parquet:"opponent_store"`
	TableSize     int64  `parquet:"table_size"`
	FinalState    uint64 `parquet:"final_state"`
	StartTime     int64  `parquet:"start_time_unix_nano"`
	DurationNanos int64  `parquet:"duration_nanos"`
}

type Writer struct {
	baseDir string
}

// NewWriter creates root/name/<timestamp>_<runID> and writes every file of the run there.
func NewWriter(root, name, runID string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp+"_"+runID)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "kind", "temperature", "seed"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Kind,
			strconv.FormatFloat(config.Temperature, 'g', -1, 64),
			strconv.FormatUint(config.Seed, 10),
		})
	}
	return w.writeCSV("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "agent1", "agent2", "winner", "score1", "score2", "total_moves", "start_time", "end_time", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			strconv.Itoa(record.Winner),
			strconv.Itoa(record.Score1),
			strconv.Itoa(record.Score2),
			strconv.Itoa(record.TotalMoves),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	return w.writeCSV("game_records.csv", header, rows)
}

func (w *Writer) WriteEpisodeRecords(records []EpisodeRecord) error {
	header := []string{"run_id", "episode", "steps", "captures", "mover_store", "opponent_store", "table_size", "final_state", "start_time", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.RunID,
			strconv.Itoa(record.Episode),
			strconv.Itoa(record.Steps),
			strconv.Itoa(record.Captures),
			strconv.Itoa(record.MoverStore),
			strconv.Itoa(record.OpponentStore),
			strconv.Itoa(record.TableSize),
			strconv.FormatUint(uint64(record.FinalState), 16),
			record.StartTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	return w.writeCSV("episode_records.csv", header, rows)
}

// WriteEpisodeParquet stores the episode records as zstd-compressed parquet.
func (w *Writer) WriteEpisodeParquet(records []EpisodeRecord) error {
	rows := make([]episodeRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, episodeRow{
			RunID:         record.RunID,
			Episode:       int32(record.Episode),
			Steps:         int32(record.Steps),
			Captures:      int32(record.Captures),
			MoverStore:    int32(record.MoverStore),
			OpponentStore: int32(record.OpponentStore),
			TableSize:     int64(record.TableSize),
			FinalState:    uint64(record.FinalState),
			StartTime:     record.StartTime.UnixNano(),
			DurationNanos: record.Duration.Nanoseconds(),
		})
	}

	// Write to a temp file and rename atomically.
	path := filepath.Join(w.baseDir, "episode_records.parquet")
	tmpPath := path + ".tmp"
	if err := os.Remove(tmpPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove stale episode parquet: %w", err)
	}

	if err := parquet.WriteFile(tmpPath, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", "episode_record_v1"),
	); err != nil {
		return fmt.Errorf("failed to write episode parquet: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename episode parquet: %w", err)
	}
	return nil
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) (err error) {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", name, closeErr)
		}
	}()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}
