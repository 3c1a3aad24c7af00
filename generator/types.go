package generator

// Message is one chat message as returned by the model.
type Message struct {
	Role    string
	Content string
}
