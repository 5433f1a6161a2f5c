package domain

type Author string

const (
	User   Author = "user"
	System Author = "system"
)

type Prompt struct {
	Prompt string
	Author Author
}

type Message struct {
	ID       int
	ChatID   int64
	UserID   int64
	Username string
	Text     string
}

type Action string

const (
	Typing Action = "typing"
)

type ModelResponse struct {
	Response string
	Metadata ResponseMetadata
}

type ResponseMetadata struct {
	Model            string
	CompletionTokens int
	TotalTokens      int
}
