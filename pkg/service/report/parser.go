package report

import (
	"context"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/defectboard/defectboard/pkg/domain/interfaces"
	"github.com/defectboard/defectboard/pkg/domain/model"
	"github.com/defectboard/defectboard/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// headerDatePattern matches "du DDMMYY sur" in the second line of a report
var headerDatePattern = regexp.MustCompile(`du (\d{2})(\d{2})(\d{2}) sur`)

// recordPrefixes are the prefixes of lines holding a defect code
var recordPrefixes = []string{"1%", "2%"}

const (
	headerLineIndex = 1
	firstRecordLine = 2
	referenceLength = 2
)

// Parser parses report files, selecting a LineReader by file extension
type Parser struct {
	text  interfaces.LineReader
	sheet interfaces.LineReader
}

var _ interfaces.ReportParser = (*Parser)(nil)

// NewParser creates a parser honoring the xlsx mode of cfg
func NewParser(cfg *model.SourceConfig) *Parser {
	p := &Parser{
		text:  NewTextReader(),
		sheet: NewSheetReader(),
	}
	if cfg != nil && cfg.XLSXMode == types.XLSXModeText {
		p.sheet = p.text
	}
	return p
}

// ParseFile reads and parses one report file
func (p *Parser) ParseFile(ctx context.Context, path string) (*model.Report, error) {
	reader := p.text
	if strings.HasSuffix(path, ".xlsx") {
		reader = p.sheet
	}

	lines, err := reader.ReadLines(ctx, path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read report", goerr.V("path", path))
	}

	report, err := ParseLines(lines)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse report", goerr.V("path", path))
	}
	report.Path = path

	return report, nil
}

// ParseLines extracts the date and the defect records of a report.
// The second line is the header; records start on the third line.
func ParseLines(lines []string) (*model.Report, error) {
	if len(lines) <= headerLineIndex {
		return nil, goerr.Wrap(model.ErrMalformedReport, "report has no header line",
			goerr.V("lines", len(lines)))
	}

	date := ExtractDate(strings.TrimSpace(lines[headerLineIndex]))
	report := &model.Report{
		Date:    date,
		Records: []model.DefectRecord{},
	}

	for _, line := range lines[firstRecordLine:] {
		rec, ok := ParseRecord(line)
		if !ok {
			continue
		}
		rec.Date = date
		report.Records = append(report.Records, rec)
	}

	return report, nil
}

// ExtractDate returns the header date as DD/MM/20YY, or an empty date when
// the header does not contain "du DDMMYY sur"
func ExtractDate(header string) types.ReportDate {
	m := headerDatePattern.FindStringSubmatch(header)
	if m == nil {
		return ""
	}
	return types.ReportDate(m[1] + "/" + m[2] + "/20" + m[3])
}

// ParseRecord parses a record line. Lines that do not start with a record
// prefix or that do not have exactly two fields are rejected.
func ParseRecord(line string) (model.DefectRecord, bool) {
	if !hasRecordPrefix(line) {
		return model.DefectRecord{}, false
	}

	fields := strings.Fields(line)
	if len(fields) != 2 {
		return model.DefectRecord{}, false
	}

	code := fields[0]
	return model.DefectRecord{
		Reference:  types.Reference(code[:referenceLength]),
		Type:       types.DefectType(code[referenceLength:]),
		Recurrence: ParseRecurrence(fields[1]),
	}, true
}

// ParseRecurrence converts a recurrence count. Decimal values are truncated;
// anything that is not a finite non-negative number yields 0.
func ParseRecurrence(s string) int {
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 {
			return 0
		}
		return n
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 || f >= math.MaxInt64 {
		return 0
	}
	return int(f)
}

func hasRecordPrefix(line string) bool {
	for _, prefix := range recordPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}
