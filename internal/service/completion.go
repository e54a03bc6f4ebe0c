package service

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"sportsbook-settlement/internal/metrics"
	"sportsbook-settlement/internal/model"
	"sportsbook-settlement/internal/repository"

	"github.com/rs/zerolog"
)

// errBookListing marks a failure to list the candidate books, after which
// nothing else can be checked.
var errBookListing = errors.New("list active books")

type CompletionDetectorImpl struct {
	catalog repository.CatalogRepository
	metrics *metrics.Metrics
	logger  zerolog.Logger
}

func NewCompletionDetector(catalog repository.CatalogRepository, m *metrics.Metrics, logger zerolog.Logger) CompletionDetector {
	return &CompletionDetectorImpl{
		catalog: catalog,
		metrics: m,
		logger:  logger,
	}
}

// FindCompletable yields each ACTIVE book whose outcomes are all resolved,
// after moving it to COMPLETED. A book another caller completed first is
// skipped. Errors are yielded per book and iteration goes on; stopping early
// leaves no state behind, so calling it again starts over.
func (d *CompletionDetectorImpl) FindCompletable(ctx context.Context) iter.Seq2[*model.Book, error] {
	return func(yield func(*model.Book, error) bool) {
		books, err := d.catalog.ListBooks(ctx, model.BookActive)
		if err != nil {
			yield(nil, fmt.Errorf("%w: %w", errBookListing, err))
			return
		}

		for _, book := range books {
			if err := ctx.Err(); err != nil {
				yield(nil, err)
				return
			}

			completable, err := d.isCompletable(ctx, book)
			if err != nil {
				if !yield(nil, fmt.Errorf("check book %s: %w", book.ID, err)) {
					return
				}
				continue
			}
			if !completable {
				continue
			}

			claimed, err := d.catalog.SetBookStatus(ctx, book.ID, model.BookActive, model.BookCompleted)
			if err != nil {
				if !yield(nil, fmt.Errorf("complete book %s: %w", book.ID, err)) {
					return
				}
				continue
			}
			if !claimed {
				d.logger.Debug().Str("book_id", book.ID).Msg("book already completed by another runner")
				continue
			}

			book.Status = model.BookCompleted
			d.metrics.BookCompleted()
			d.logger.Info().Str("book_id", book.ID).Str("name", book.Name).Msg("book completed")

			if !yield(book, nil) {
				return
			}
		}
	}
}

// isCompletable is true when the book has at least one outcome and every
// outcome is resolved
func (d *CompletionDetectorImpl) isCompletable(ctx context.Context, book *model.Book) (bool, error) {
	events, err := d.catalog.ListEventsOf(ctx, book.ID)
	if err != nil {
		return false, fmt.Errorf("list events: %w", err)
	}

	total := 0
	for _, event := range events {
		outcomes, err := d.catalog.ListOutcomesOf(ctx, event.ID)
		if err != nil {
			return false, fmt.Errorf("list outcomes: %w", err)
		}
		for _, outcome := range outcomes {
			if !outcome.IsResolved() {
				return false, nil
			}
			total++
		}
	}
	return total > 0, nil
}
