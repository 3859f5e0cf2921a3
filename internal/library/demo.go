package library

// DemoBooks is the fixed set of books used by the demo script and by
// serve mode when seeding is enabled.
var DemoBooks = []struct {
	Title  string
	Author string
}{
	{"The Great Gatsby", "F. Scott Fitzgerald"},
	{"1984", "George Orwell"},
	{"To Kill a Mockingbird", "Harper Lee"},
}

var DemoUsers = []string{"Alice", "Bob"}

// Seed adds the demo books and users. On an empty system they receive ids
// 1..3 and 1..2.
func Seed(s *System) {
	for _, b := range DemoBooks {
		s.AddBook(b.Title, b.Author)
	}
	for _, name := range DemoUsers {
		s.AddUser(name)
	}
}
