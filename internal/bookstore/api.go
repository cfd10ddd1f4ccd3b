package bookstore

import (
	"context"

	"apirunner/internal/httpclient"
)

// Requester is the HTTP capability the suite needs
type Requester interface {
	Request(ctx context.Context, method, url string, opts httpclient.Options) (*httpclient.Response, error)
}

// Book is a catalogue entry as returned by the book store API
type Book struct {
	ISBN        string `json:"isbn"`
	Title       string `json:"title"`
	Subtitle    string `json:"subTitle"`
	Author      string `json:"author"`
	PublishDate string `json:"publish_date"`
	Publisher   string `json:"publisher"`
	Pages       int    `json:"pages"`
	Description string `json:"description"`
	Website     string `json:"website"`
}

// BookSummary is the isbn/title/author projection logged by the listing case
type BookSummary struct {
	ISBN   string `json:"isbn"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

type booksResponse struct {
	Books []Book `json:"books"`
}

// Summaries projects books onto their isbn, title and author
func Summaries(books []Book) []BookSummary {
	out := make([]BookSummary, 0, len(books))
	for _, b := range books {
		out = append(out, BookSummary{ISBN: b.ISBN, Title: b.Title, Author: b.Author})
	}
	return out
}

// ByAuthor returns the books written by author
func ByAuthor(books []Book, author string) []Book {
	var out []Book
	for _, b := range books {
		if b.Author == author {
			out = append(out, b)
		}
	}
	return out
}

// CountShorterThan returns how many books have fewer than pages pages
func CountShorterThan(books []Book, pages int) int {
	n := 0
	for _, b := range books {
		if b.Pages < pages {
			n++
		}
	}
	return n
}
