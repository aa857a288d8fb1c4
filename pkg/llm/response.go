package llm

import "fmt"

// Kind tags the shape a provider returned.
type Kind int

const (
	KindUnknown Kind = iota
	KindPlainText
	KindContent
	KindGenerations
)

func (k Kind) String() string {
	switch k {
	case KindPlainText:
		return "plain_text"
	case KindContent:
		return "content"
	case KindGenerations:
		return "generations"
	default:
		return "unknown"
	}
}

// Message is the nested message of a generation.
type Message struct {
	Role    string
	Content string
}

// Generation is one candidate completion; Message may be absent.
type Generation struct {
	Message *Message
}

// Response is what a ChatModel returns. Only the fields matching Kind are meaningful;
// Raw keeps the provider payload for the generic string form.
type Response struct {
	Kind        Kind
	Text        string
	Content     string
	Generations []Generation
	Raw         any
}

// PlainText wraps an already textual reply.
func PlainText(s string) Response { return Response{Kind: KindPlainText, Text: s, Raw: s} }

// ContentOf wraps a reply that carries a content field.
func ContentOf(content string, raw any) Response {
	return Response{Kind: KindContent, Content: content, Raw: raw}
}

// GenerationsOf wraps a list of generations.
func GenerationsOf(gens []Generation, raw any) Response {
	return Response{Kind: KindGenerations, Generations: gens, Raw: raw}
}

// Unknown wraps a payload of no recognised shape.
func Unknown(raw any) Response { return Response{Kind: KindUnknown, Raw: raw} }

// String is the generic string form of the whole response.
func (r Response) String() string {
	if r.Raw != nil {
		return fmt.Sprint(r.Raw)
	}
	switch r.Kind {
	case KindPlainText:
		return r.Text
	case KindContent:
		return r.Content
	}
	return fmt.Sprintf("%+v", r.Generations)
}

// Answer normalizes the response to a plain string: plain text, then content,
// then the first generation's message content, then the generic string form.
func (r Response) Answer() string {
	switch r.Kind {
	case KindPlainText:
		return r.Text
	case KindContent:
		return r.Content
	case KindGenerations:
		if len(r.Generations) > 0 && r.Generations[0].Message != nil {
			return r.Generations[0].Message.Content
		}
	}
	return r.String()
}
