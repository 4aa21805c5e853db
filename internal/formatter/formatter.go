// package formatter provides functions to export a book list to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"shelfmate/internal/models"
)

// ExportToCSV converts a book list to CSV format with columns: Title, PagesRead, TotalPages, Percent, Status, Deadline, Favorite
func ExportToCSV(books []models.Book) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Title", "PagesRead", "TotalPages", "Percent", "Status", "Deadline", "Favorite"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, book := range books {
		record := []string{
			book.Title,
			strconv.Itoa(book.PagesRead),
			strconv.Itoa(book.TotalPages),
			strconv.Itoa(book.Percent()),
			string(book.Status),
			book.Deadline,
			strconv.FormatBool(book.Favorite),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a book list to a Markdown reading log for the given owner
func ExportToMarkdown(owner string, books []models.Book) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# Reading log: %s\n\n", owner))
	buf.WriteString(fmt.Sprintf("**Books**: %d\n\n", len(books)))

	buf.WriteString("## Books\n\n")
	for i, book := range books {
		star := ""
		if book.Favorite {
			star = " ⭐"
		}
		buf.WriteString(fmt.Sprintf("%d. %s%s (%s, %d/%d pages, %d%%, due %s)\n",
			i+1, book.Title, star, book.Status, book.PagesRead, book.TotalPages, book.Percent(), book.Deadline))
	}

	return buf.Bytes(), nil
}

// ExportToText converts a book list to plain text format
func ExportToText(owner string, books []models.Book) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Reading log: %s (%d books)\n\n", owner, len(books)))
	for _, book := range books {
		fav := " "
		if book.Favorite {
			fav = "*"
		}
		buf.WriteString(fmt.Sprintf("%s %-40s %-10s %5d/%-5d %3d%%  %s\n",
			fav, book.Title, book.Status, book.PagesRead, book.TotalPages, book.Percent(), book.Deadline))
	}

	return buf.Bytes(), nil
}
