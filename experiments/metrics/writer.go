package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Writer stores one experiment run's records as CSV files under a run
// directory named by timestamp plus a unique suffix, so repeated runs never
// clobber each other.
type Writer struct {
	baseDir string
}

func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("2006-01-02T15-04-05")
	run := fmt.Sprintf("%s-%s", timestamp, uuid.NewString()[:8])
	baseDir := filepath.Join(root, name, run)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{baseDir: baseDir}, nil
}

// Dir returns the run directory the writer stores into.
func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "variant", "episodes", "duration", "exploration", "rave_equivalence", "grave_threshold"}
	rows := make([][]string, len(configs))
	for i, config := range configs {
		rows[i] = []string{
			strconv.Itoa(config.ID),
			config.Variant.String(),
			strconv.Itoa(config.Episodes),
			config.Duration.String(),
			strconv.FormatFloat(config.Exploration, 'g', -1, 64),
			strconv.FormatFloat(config.RaveEquivalence, 'g', -1, 64),
			strconv.Itoa(config.GraveThreshold),
		}
	}
	return w.writeFile("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "agent1", "agent2", "winner", "duration", "moves"}
	rows := make([][]string, len(records))
	for i, record := range records {
		rows[i] = []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			record.Winner.String(),
			record.Duration.String(),
			strconv.Itoa(record.Moves),
		}
	}
	return w.writeFile("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "column", "episodes", "full_playouts", "duration"}
	rows := make([][]string, len(records))
	for i, record := range records {
		rows[i] = []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player.String(),
			strconv.Itoa(record.Column),
			strconv.Itoa(record.Episodes),
			strconv.Itoa(record.FullPlayouts),
			record.Duration.String(),
		}
	}
	return w.writeFile("move_records.csv", header, rows)
}

func (w *Writer) WriteSummaries(summaries []MatchupSummary) error {
	header := []string{"agent1", "agent2", "games", "wins1", "wins2", "draws", "win_rate", "std_err"}
	rows := make([][]string, len(summaries))
	for i, summary := range summaries {
		rows[i] = []string{
			strconv.Itoa(summary.Agent1),
			strconv.Itoa(summary.Agent2),
			strconv.Itoa(summary.Games),
			strconv.Itoa(summary.Wins1),
			strconv.Itoa(summary.Wins2),
			strconv.Itoa(summary.Draws),
			strconv.FormatFloat(summary.WinRate, 'f', 4, 64),
			strconv.FormatFloat(summary.StdErr, 'f', 4, 64),
		}
	}
	return w.writeFile("matchup_summaries.csv", header, rows)
}

func (w *Writer) writeFile(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}
	return writer.Error()
}
