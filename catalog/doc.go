// Package catalog contains the sample item domain used to demonstrate specification-based filtering:
// book products classified by BookType and Size, together with the Specification(s) that select them.
package catalog
