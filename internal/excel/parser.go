package excel

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// SessionRow is one imported schedule row, still holding names instead
// of ids. The API layer resolves them against the store and runs every
// row through the holiday and conflict gate before saving.
type SessionRow struct {
	RowNumber   int
	ClassName   string
	SubjectName string
	TeacherName string
	Room        string
	Date        string // YYYY-MM-DD
	StartPeriod int
	PeriodCount int
	Group       string
	Note        string
}

// -------------------- PARSING --------------------

// ParseSessions reads schedule rows from every sheet of the workbook.
// Expected columns: Class | Subject | Teacher | Room | Date | Start | Count | Group | Note.
// The first row of each sheet is a header and is skipped.
func ParseSessions(path string) ([]SessionRow, error) {
	log.Println("📖 Opening Excel file:", path)

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var sessions []SessionRow

	for _, sheetName := range f.GetSheetList() {
		log.Println("➡️ Parsing sheet:", sheetName)

		sheetSessions, err := parseSheet(f, sheetName)
		if err != nil {
			return nil, fmt.Errorf("error parsing sheet %s: %w", sheetName, err)
		}

		log.Printf("✅ Parsed %d schedule rows from sheet %s\n", len(sheetSessions), sheetName)
		sessions = append(sessions, sheetSessions...)
	}

	log.Printf("🎉 Finished parsing. Total rows: %d\n", len(sessions))
	return sessions, nil
}

func parseSheet(f *excelize.File, sheetName string) ([]SessionRow, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	var sessions []SessionRow
	skipped := 0

	for rowIndex, row := range rows {
		if rowIndex == 0 {
			continue // header
		}

		session, ok := parseRow(rowIndex+1, row)
		if ok {
			sessions = append(sessions, session)
		} else if len(row) > 0 && strings.TrimSpace(row[0]) != "" {
			skipped++
			log.Printf("⚠️ Skipped row %d in sheet %s\n", rowIndex+1, sheetName)
		}
	}

	if skipped > 0 {
		log.Printf("📊 Sheet %s: %d rows, %d skipped\n", sheetName, len(sessions), skipped)
	}
	return sessions, nil
}

func parseRow(rowNumber int, row []string) (SessionRow, bool) {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	className := cell(0)
	subjectName := cell(1)
	teacherName := cell(2)
	room := cell(3)
	date := cell(4)

	if className == "" || subjectName == "" || teacherName == "" || room == "" || date == "" {
		return SessionRow{}, false
	}
	if !validDate(date) {
		log.Printf("❌ Invalid date %q at row %d\n", date, rowNumber)
		return SessionRow{}, false
	}

	startPeriod, err := strconv.Atoi(cell(5))
	if err != nil || startPeriod < 1 || startPeriod > 14 {
		log.Printf("❌ Invalid start period %q at row %d\n", cell(5), rowNumber)
		return SessionRow{}, false
	}
	periodCount, err := strconv.Atoi(cell(6))
	if err != nil || periodCount < 1 {
		log.Printf("❌ Invalid period count %q at row %d\n", cell(6), rowNumber)
		return SessionRow{}, false
	}

	return SessionRow{
		RowNumber:   rowNumber,
		ClassName:   className,
		SubjectName: subjectName,
		TeacherName: teacherName,
		Room:        room,
		Date:        date,
		StartPeriod: startPeriod,
		PeriodCount: periodCount,
		Group:       cell(7),
		Note:        cell(8),
	}, true
}

func validDate(date string) bool {
	parts := strings.Split(date, "-")
	if len(parts) != 3 || len(parts[0]) != 4 || len(parts[1]) != 2 || len(parts[2]) != 2 {
		return false
	}
	for _, p := range parts {
		if _, err := strconv.Atoi(p); err != nil {
			return false
		}
	}
	return true
}
