// Package dataset lays feature rows out as the fixed-order tabular
// artifact consumed by training and prediction, and reads it back.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/dugoutlabs/pennant/internal/features"
)

const dateLayout = "2006-01-02"

// Columns is the canonical column order of the feature table.
var Columns = []string{
	"date",
	"home_team",
	"away_team",
	"home_starter",
	"away_starter",
	"home_win_pct",
	"away_win_pct",
	"home_last10_win_pct",
	"away_last10_win_pct",
	"home_runs_pg",
	"away_runs_pg",
	"home_runs_allowed_pg",
	"away_runs_allowed_pg",
	"home_pitcher_era",
	"away_pitcher_era",
	"home_pitcher_whip",
	"away_pitcher_whip",
	"home_score",
	"away_score",
	"target",
}

// PredictorColumns are the numeric model inputs, in the order Predictors
// emits them. Identifier, score, and target columns are never fed to the
// model.
var PredictorColumns = Columns[5:17]

// Predictors extracts the model input vector from a row, in
// PredictorColumns order.
func Predictors(r features.Row) []float64 {
	return []float64{
		r.HomeWinPct,
		r.AwayWinPct,
		r.HomeLast10WinPct,
		r.AwayLast10WinPct,
		r.HomeRunsPG,
		r.AwayRunsPG,
		r.HomeRunsAllowedPG,
		r.AwayRunsAllowedPG,
		r.HomePitcherERA,
		r.AwayPitcherERA,
		r.HomePitcherWHIP,
		r.AwayPitcherWHIP,
	}
}

// WriteFile persists rows to a CSV artifact at path, creating parent
// directories as needed.
func WriteFile(path string, rows []features.Row) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create dataset directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create dataset: %w", err)
	}
	defer f.Close()

	if err := Write(f, rows); err != nil {
		return fmt.Errorf("failed to write dataset %s: %w", path, err)
	}
	return nil
}

// Write emits the feature table. Numeric predictor values that carry no
// computed value (NaN) are backfilled with 0.5; non-numeric columns are
// left untouched. Idempotent for the same input sequence.
func Write(w io.Writer, rows []features.Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return err
	}

	for _, r := range rows {
		record := []string{
			r.Date.Format(dateLayout),
			r.HomeTeam,
			r.AwayTeam,
			r.HomeStarter,
			r.AwayStarter,
			formatFloat(r.HomeWinPct),
			formatFloat(r.AwayWinPct),
			formatFloat(r.HomeLast10WinPct),
			formatFloat(r.AwayLast10WinPct),
			formatFloat(r.HomeRunsPG),
			formatFloat(r.AwayRunsPG),
			formatFloat(r.HomeRunsAllowedPG),
			formatFloat(r.AwayRunsAllowedPG),
			formatFloat(r.HomePitcherERA),
			formatFloat(r.AwayPitcherERA),
			formatFloat(r.HomePitcherWHIP),
			formatFloat(r.AwayPitcherWHIP),
			strconv.Itoa(r.HomeScore),
			strconv.Itoa(r.AwayScore),
			strconv.Itoa(r.Target),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// LoadFile reads a feature table artifact back into rows.
func LoadFile(path string) ([]features.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	rows, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", path, err)
	}
	return rows, nil
}

// Load parses a feature table produced by Write. The header must match
// Columns exactly; the artifact's layout is part of its contract.
func Load(r io.Reader) ([]features.Row, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if len(header) != len(Columns) {
		return nil, fmt.Errorf("expected %d columns, got %d", len(Columns), len(header))
	}
	for i, name := range header {
		if name != Columns[i] {
			return nil, fmt.Errorf("unexpected column %q at position %d", name, i)
		}
	}

	var rows []features.Row
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		date, err := time.Parse(dateLayout, record[0])
		if err != nil {
			return nil, fmt.Errorf("bad date %q: %w", record[0], err)
		}

		nums := make([]float64, 12)
		for i := 0; i < 12; i++ {
			v, err := strconv.ParseFloat(record[5+i], 64)
			if err != nil {
				return nil, fmt.Errorf("bad %s value %q: %w", Columns[5+i], record[5+i], err)
			}
			nums[i] = v
		}
		homeScore, err := strconv.Atoi(record[17])
		if err != nil {
			return nil, fmt.Errorf("bad home_score %q: %w", record[17], err)
		}
		awayScore, err := strconv.Atoi(record[18])
		if err != nil {
			return nil, fmt.Errorf("bad away_score %q: %w", record[18], err)
		}
		target, err := strconv.Atoi(record[19])
		if err != nil {
			return nil, fmt.Errorf("bad target %q: %w", record[19], err)
		}

		rows = append(rows, features.Row{
			Date:              date,
			HomeTeam:          record[1],
			AwayTeam:          record[2],
			HomeStarter:       record[3],
			AwayStarter:       record[4],
			HomeWinPct:        nums[0],
			AwayWinPct:        nums[1],
			HomeLast10WinPct:  nums[2],
			AwayLast10WinPct:  nums[3],
			HomeRunsPG:        nums[4],
			AwayRunsPG:        nums[5],
			HomeRunsAllowedPG: nums[6],
			AwayRunsAllowedPG: nums[7],
			HomePitcherERA:    nums[8],
			AwayPitcherERA:    nums[9],
			HomePitcherWHIP:   nums[10],
			AwayPitcherWHIP:   nums[11],
			HomeScore:         homeScore,
			AwayScore:         awayScore,
			Target:            target,
		})
	}
	return rows, nil
}

// Split partitions rows into completed and scheduled games.
func Split(rows []features.Row) (completed, scheduled []features.Row) {
	for _, r := range rows {
		if r.Scheduled() {
			scheduled = append(scheduled, r)
		} else {
			completed = append(completed, r)
		}
	}
	return completed, scheduled
}

func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return "0.5"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
