package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/apps/lending-api/internal/db"
	"github.com/snnyvrz/shelfshare/apps/lending-api/internal/library"
	"github.com/spf13/cobra"
)

var sampleBooks = []struct{ title, author string }{
	{"Moby Dick", "Herman Melville"},
	{"Animal Farm", "George Orwell"},
	{"Pride and Prejudice", "Jane Austen"},
	{"Romeo and Juliet", "William Shakespeare"},
	{"The Three Musketeers", "Alexandre Dumas"},
	{"War and Peace", "Leo Tolstoy"},
	{"Great Expectations", "Charles Dickens"},
	{"The Old Man and the Sea", "Ernest Hemingway"},
	{"Frankenstein", "Mary Shelley"},
	{"Dracula", "Bram Stoker"},
}

var sampleMembers = []string{"Ishmael", "Elizabeth Bennet", "Pip"}

type seedResult struct {
	books   int
	members int
	loans   int
}

func newSeedCmd(e env) *cobra.Command {
	var copies int
	var withLoans bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert a sample catalog and members",
		Long: "Insert a sample catalog and members. Books go through create-or-merge, " +
			"so running seed again adds copies instead of duplicating rows.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if copies < 0 {
				return fmt.Errorf("--books must not be negative, got %d", copies)
			}

			s, err := e.connect()
			if err != nil {
				return err
			}
			if err := db.Migrate(s.db); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}

			res, err := seed(cmd.Context(), s.catalog, s.lending, copies, withLoans)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d books (%d copies each), %d new members, %d new loans\n",
				res.books, copies, res.members, res.loans)
			return nil
		},
	}

	cmd.Flags().IntVar(&copies, "books", 3, "copies to add per sample title")
	cmd.Flags().BoolVar(&withLoans, "loans", true, "let each sample member borrow one book")

	return cmd
}

func seed(ctx context.Context, catalog *library.Catalog, lending *library.Lending, copies int, withLoans bool) (seedResult, error) {
	var res seedResult

	bookIDs := make([]uuid.UUID, 0, len(sampleBooks))
	for _, b := range sampleBooks {
		book, err := catalog.CreateOrMergeBook(ctx, library.BookInput{Title: b.title, Author: b.author, Amount: copies})
		if err != nil {
			return res, fmt.Errorf("seed book %q: %w", b.title, err)
		}
		bookIDs = append(bookIDs, book.ID)
		res.books++
	}

	existing, err := lending.ListMembers(ctx)
	if err != nil {
		return res, fmt.Errorf("list members: %w", err)
	}
	byName := make(map[string]struct{}, len(existing))
	for _, m := range existing {
		byName[m.Name] = struct{}{}
	}

	for i, name := range sampleMembers {
		if _, ok := byName[name]; ok {
			continue
		}
		member, err := lending.CreateMember(ctx, name)
		if err != nil {
			return res, fmt.Errorf("seed member %q: %w", name, err)
		}
		res.members++

		if !withLoans {
			continue
		}
		_, err = lending.Borrow(ctx, member.ID, bookIDs[i%len(bookIDs)])
		switch {
		case err == nil:
			res.loans++
		case errors.Is(err, library.ErrBookNotAvailable):
		default:
			return res, fmt.Errorf("seed loan for %q: %w", name, err)
		}
	}

	return res, nil
}
