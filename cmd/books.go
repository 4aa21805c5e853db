package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"shelfmate/internal/formatter"
	"shelfmate/internal/shared"
)

// BooksList prints a user's records as text or JSON.
func (r *Runner) BooksList(ctx context.Context, cmd *cli.Command) error {
	user := cmd.String("user")
	books := r.books.ListForUser(user)

	if cmd.Bool("json") {
		return r.writeJSON(books, cmd.Bool("pretty"))
	}

	data, err := formatter.ExportToText(user, books)
	if err != nil {
		return err
	}
	return r.writePlain("%s", string(data))
}

// BooksExport writes a user's reading log in the requested format.
func (r *Runner) BooksExport(ctx context.Context, cmd *cli.Command) error {
	user := cmd.String("user")
	books := r.books.ListForUser(user)

	var data []byte
	var err error
	switch format := cmd.String("format"); format {
	case "csv":
		data, err = formatter.ExportToCSV(books)
	case "markdown", "md":
		data, err = formatter.ExportToMarkdown(user, books)
	case "text", "txt":
		data, err = formatter.ExportToText(user, books)
	default:
		err = fmt.Errorf("%w: format must be csv, markdown or text, got %q", shared.ErrInvalidFlag, format)
	}
	if err != nil {
		return err
	}

	if out := cmd.String("output"); out != "" {
		if err := os.WriteFile(out, data, 0644); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		r.logger.Info("wrote export", "path", out, "books", len(books))
		return r.writePlainln("Wrote %s", out)
	}
	return r.writePlain("%s", string(data))
}
