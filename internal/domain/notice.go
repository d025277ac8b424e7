package domain

// NoticeKind is the tone of a transient notification
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
	NoticeInfo    NoticeKind = "info"
)

// Notice is a dismissible message shown to the user
type Notice struct {
	Kind        NoticeKind
	Title       string
	Description string
}

// String renders the notice as a chat message
func (n Notice) String() string {
	var prefix string
	switch n.Kind {
	case NoticeSuccess:
		prefix = "✅ "
	case NoticeError:
		prefix = "⚠️ "
	case NoticeInfo:
		prefix = "🔔 "
	}
	if n.Description == "" {
		return prefix + n.Title
	}
	return prefix + n.Title + "\n" + n.Description
}
