package dataset

import (
	"bytes"
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/finwatch-lab/anchorboard/pkg/domain/model"
	"github.com/finwatch-lab/anchorboard/pkg/domain/types"
)

// Column names of the source CSV. The file is long-format: the Component
// column selects the dashboard section and the remaining columns are
// sparse, filled only for rows of their section.
const (
	colComponent      = "Component"
	colFeature        = "Feature"
	colSHAPValue      = "SHAP Value"
	colLIMEWeight     = "LIME Weight"
	colSource         = "Source"
	colSourceShare    = "Percentage Contribution (%)"
	colModel          = "Model"
	colAccuracy       = "Accuracy (%)"
	colComplianceRate = "Compliance Rate (%)"
	colDate           = "Date"
	colRiskFactor     = "Risk Factor"
	colContribution   = "Risk Score Contribution (%)"
	colCorrelation    = "Correlation"
)

const dateLayout = "2006-01-02"

// Load reads and parses the dataset CSV at path, returning the validated
// read-only table. Column order is not significant; columns are resolved
// by header name. Rows missing a required cell for their component are
// skipped, matching the original dashboard's drop-missing behavior.
func Load(path string) (*model.Dataset, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(ErrDatasetNotFound, "failed to read dataset file",
			goerr.V(PathKey, path), goerr.V("cause", err.Error()))
	}

	ds, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse dataset file", goerr.V(PathKey, path))
	}
	return ds, nil
}

// Parse reads dataset rows from r and validates the resulting table
func Parse(r io.Reader) (*model.Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, goerr.Wrap(ErrDatasetMalformed, "failed to read CSV header",
			goerr.V("cause", err.Error()))
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	if _, ok := cols[colComponent]; !ok {
		return nil, goerr.Wrap(ErrDatasetMalformed, "missing required column",
			goerr.V(ColumnKey, colComponent))
	}

	var ds model.Dataset
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(ErrDatasetMalformed, "failed to read CSV record",
				goerr.V(LineKey, line), goerr.V("cause", err.Error()))
		}

		row := rowReader{cols: cols, record: record, line: line}
		component := types.Component(row.cell(colComponent))

		switch component {
		case types.ComponentInterpretability:
			if row.empty(colFeature, colSHAPValue) {
				continue
			}
			shap, err := row.float(colSHAPValue)
			if err != nil {
				return nil, err
			}
			lime, err := row.optionalFloat(colLIMEWeight)
			if err != nil {
				return nil, err
			}
			ds.Attributions = append(ds.Attributions, model.FeatureAttribution{
				Feature:    row.cell(colFeature),
				SHAPValue:  shap,
				LIMEWeight: lime,
			})

		case types.ComponentDataSources:
			if row.empty(colSource, colSourceShare) {
				continue
			}
			share, err := row.float(colSourceShare)
			if err != nil {
				return nil, err
			}
			ds.Sources = append(ds.Sources, model.DataSource{
				Name:  row.cell(colSource),
				Share: share,
			})

		case types.ComponentKeyMetrics:
			if row.empty(colModel, colAccuracy, colComplianceRate) {
				continue
			}
			accuracy, err := row.float(colAccuracy)
			if err != nil {
				return nil, err
			}
			compliance, err := row.float(colComplianceRate)
			if err != nil {
				return nil, err
			}
			date, err := row.date(colDate)
			if err != nil {
				return nil, err
			}
			ds.Metrics = append(ds.Metrics, model.ModelMetric{
				Model:          row.cell(colModel),
				Accuracy:       accuracy,
				ComplianceRate: compliance,
				Date:           date,
			})

		case types.ComponentScenario:
			if row.empty(colRiskFactor, colContribution) {
				continue
			}
			contribution, err := row.float(colContribution)
			if err != nil {
				return nil, err
			}
			// The CSV stores contributions as percentages
			ds.RiskFactors = append(ds.RiskFactors, model.RiskFactor{
				Name:             types.FactorName(row.cell(colRiskFactor)),
				BaseContribution: contribution / 100,
				Correlation:      row.cell(colCorrelation),
			})

		default:
			return nil, goerr.Wrap(ErrDatasetMalformed, "unknown component",
				goerr.V(LineKey, line), goerr.V(ValueKey, component))
		}
	}

	if err := ds.Validate(); err != nil {
		return nil, err
	}

	return &ds, nil
}

// rowReader resolves cells of one CSV record by column name
type rowReader struct {
	cols   map[string]int
	record []string
	line   int
}

func (r rowReader) cell(name string) string {
	idx, ok := r.cols[name]
	if !ok || idx >= len(r.record) {
		return ""
	}
	return strings.TrimSpace(r.record[idx])
}

func (r rowReader) empty(names ...string) bool {
	for _, name := range names {
		if r.cell(name) == "" {
			return true
		}
	}
	return false
}

func (r rowReader) float(name string) (float64, error) {
	raw := r.cell(name)
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, goerr.Wrap(ErrDatasetMalformed, "unparseable number",
			goerr.V(LineKey, r.line), goerr.V(ColumnKey, name), goerr.V(ValueKey, raw))
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, goerr.Wrap(ErrDatasetMalformed, "non-finite number",
			goerr.V(LineKey, r.line), goerr.V(ColumnKey, name), goerr.V(ValueKey, raw))
	}
	return v, nil
}

func (r rowReader) optionalFloat(name string) (float64, error) {
	if r.cell(name) == "" {
		return 0, nil
	}
	return r.float(name)
}

func (r rowReader) date(name string) (time.Time, error) {
	raw := r.cell(name)
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, goerr.Wrap(ErrDatasetMalformed, "unparseable date",
			goerr.V(LineKey, r.line), goerr.V(ColumnKey, name), goerr.V(ValueKey, raw))
	}
	return t, nil
}
