package domain

// InputState is what free text from the chat is currently interpreted as
type InputState string

const (
	InputIdle             InputState = "idle"
	InputLoginEmail       InputState = "login_email"
	InputLoginPassword    InputState = "login_password"
	InputRegisterName     InputState = "register_name"
	InputRegisterEmail    InputState = "register_email"
	InputRegisterPassword InputState = "register_password"
	InputFeedbackName     InputState = "feedback_name"
	InputFeedbackEmail    InputState = "feedback_email"
	InputFeedbackSubject  InputState = "feedback_subject"
	InputFeedbackMessage  InputState = "feedback_message"
	InputContactMessage   InputState = "contact_message"
	InputIDNumber         InputState = "id_number"
)

// FormData holds partially entered multi-prompt forms
type FormData struct {
	Name     string
	Email    string
	Password string
	Subject  string
}

// ChatState is everything the bot remembers about one chat
type ChatState struct {
	App     AppState
	Input   InputState
	Form    FormData
	Wizard  *PaymentWizard
	Contact *ContactForm

	// Notices queued for the next screen shown to the chat
	Pending []Notice
}

// NewChatState returns the state of a chat seen for the first time
func NewChatState() *ChatState {
	return &ChatState{
		App:   InitialAppState(),
		Input: InputIdle,
	}
}

// Flash queues a notice for the next screen
func (c *ChatState) Flash(n Notice) {
	c.Pending = append(c.Pending, n)
}

// TakeNotices returns and clears the queued notices
func (c *ChatState) TakeNotices() []Notice {
	out := c.Pending
	c.Pending = nil
	return out
}

// ResetInput drops any half-entered form
func (c *ChatState) ResetInput() {
	c.Input = InputIdle
	c.Form = FormData{}
}
