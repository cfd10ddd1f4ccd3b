package bookstore

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"apirunner/internal/execution"
	"apirunner/internal/expect"
	"apirunner/internal/httpclient"
	"apirunner/internal/logging"
)

const (
	listAuthor = "Richard E. Silverman"
	shortBook  = 300
)

// ErrNoISBN is returned by the lookup case when no earlier case captured an ISBN
var ErrNoISBN = errors.New("no ISBN captured by an earlier test case")

// Catalog carries the ISBN captured by one case to the cases after it
type Catalog struct {
	isbn string
}

// ISBN returns the most recently captured ISBN
func (c *Catalog) ISBN() string {
	return c.isbn
}

func (c *Catalog) capture(isbn string) {
	c.isbn = isbn
}

// Suite is the book store API test suite
type Suite struct {
	client        Requester
	baseURL       string
	author        string
	expectedBooks int
	catalog       *Catalog
}

// NewSuite creates a new Suite against baseURL
func NewSuite(client Requester, baseURL, author string, expectedBooks int) *Suite {
	return &Suite{
		client:        client,
		baseURL:       strings.TrimRight(baseURL, "/"),
		author:        author,
		expectedBooks: expectedBooks,
		catalog:       &Catalog{},
	}
}

// Catalog returns the state shared between the suite's cases
func (s *Suite) Catalog() *Catalog {
	return s.catalog
}

// Cases returns the suite's cases in execution order. "Get Book by ISBN"
// requires one of the cases before it to have captured an ISBN.
func (s *Suite) Cases() []execution.Case {
	return []execution.Case{
		{Name: "Get Books API", Unit: s.GetBooks},
		{Name: "Books API Assertions", Unit: s.GetBooksWithAssertions},
		{Name: "Get Book by ISBN", Unit: s.GetBookByISBN},
	}
}

func (s *Suite) endpoint(path string) string {
	return s.baseURL + "/BookStore/v1" + path
}

func (s *Suite) listBooks(ctx context.Context) (*httpclient.Response, []Book, error) {
	resp, err := s.client.Request(ctx, http.MethodGet, s.endpoint("/Books"), httpclient.Options{})
	if err != nil {
		return nil, nil, err
	}
	var payload booksResponse
	if err := resp.JSON(&payload); err != nil {
		return nil, nil, err
	}
	return resp, payload.Books, nil
}

// GetBooks lists the catalogue and captures the first book's ISBN
func (s *Suite) GetBooks(ctx context.Context) error {
	_, books, err := s.listBooks(ctx)
	if err != nil {
		return err
	}
	if len(books) == 0 {
		return errors.New("book store returned no books")
	}

	logging.Logger.Info("First book", "book", books[0])
	logging.Logger.Info("Filtered books", "books", Summaries(books))
	logging.Logger.Info("Total books", "count", len(books))
	logging.Logger.Info("Books with fewer than 300 pages", "count", CountShorterThan(books, shortBook))
	logging.Logger.Info("Books by author", "author", listAuthor, "books", ByAuthor(books, listAuthor))

	s.catalog.capture(books[0].ISBN)
	logging.Logger.Info("Captured first book ISBN", "isbn", s.catalog.ISBN())
	return nil
}

// GetBooksWithAssertions checks the catalogue size and the configured author's single book
func (s *Suite) GetBooksWithAssertions(ctx context.Context) error {
	resp, books, err := s.listBooks(ctx)
	if err != nil {
		return err
	}

	byAuthor := ByAuthor(books, s.author)
	if err := expect.All(
		expect.Equal("status", http.StatusOK, resp.Status),
		expect.Equal("book count", s.expectedBooks, len(books)),
		expect.Equal(fmt.Sprintf("books by %s", s.author), 1, len(byAuthor)),
	); err != nil {
		return err
	}
	if err := expect.Equal("author", s.author, byAuthor[0].Author); err != nil {
		return err
	}

	s.catalog.capture(byAuthor[0].ISBN)
	logging.Logger.Info("Captured author book ISBN", "author", s.author, "isbn", s.catalog.ISBN())
	return nil
}

// GetBookByISBN looks up the ISBN captured by an earlier case
func (s *Suite) GetBookByISBN(ctx context.Context) error {
	isbn := s.catalog.ISBN()
	if isbn == "" {
		return ErrNoISBN
	}

	resp, err := s.client.Request(ctx, http.MethodGet, s.endpoint("/Book"), httpclient.Options{
		Query: url.Values{"ISBN": {isbn}},
	})
	if err != nil {
		return err
	}
	if err := expect.Equal("status", http.StatusOK, resp.Status); err != nil {
		return err
	}

	var book Book
	if err := resp.JSON(&book); err != nil {
		return err
	}
	logging.Logger.Info("Book by ISBN", "isbn", isbn, "book", book)
	return nil
}
