package domain

import "strings"

// Page is a top-level screen
type Page string

const (
	PageHome      Page = "home"
	PageLogin     Page = "login"
	PageRegister  Page = "register"
	PageFeedback  Page = "feedback"
	PageDashboard Page = "dashboard"
)

// Title is the header shown for the page
func (p Page) Title() string {
	switch p {
	case PageHome:
		return "Beranda"
	case PageLogin:
		return "Login Penghuni"
	case PageRegister:
		return "Registrasi Akun"
	case PageFeedback:
		return "Kritik & Saran"
	case PageDashboard:
		return "Kelola Kamar"
	}
	return string(p)
}

// UserState is the tenant identity of one chat. RentedRoomID, when set,
// must resolve to a catalog room.
type UserState struct {
	LoggedIn     bool
	Email        string
	Name         string
	RentedRoomID string
}

// HasRoom reports whether the tenant rented a room
func (u UserState) HasRoom() bool {
	return u.RentedRoomID != ""
}

// AppState is the whole navigation state of one chat
type AppState struct {
	Page           Page
	SelectedRoomID string
	User           UserState
}

// InitialAppState is a logged-out chat on the home page
func InitialAppState() AppState {
	return AppState{Page: PageHome}
}

// Action is a navigation event applied by Reduce
type Action interface {
	apply(AppState) AppState
}

// Navigate switches page and drops the room selection
type Navigate struct{ Page Page }

// SelectRoom opens the detail view of a room
type SelectRoom struct{ RoomID string }

// CloseRoom returns from the detail view to the current page
type CloseRoom struct{}

// LoggedIn records a successful login
type LoggedIn struct{ Email string }

// LoggedOut clears the user
type LoggedOut struct{}

// RoomRented attaches a paid room to the user
type RoomRented struct{ RoomID string }

func (a Navigate) apply(s AppState) AppState {
	s.Page = a.Page
	s.SelectedRoomID = ""
	return s
}

func (a SelectRoom) apply(s AppState) AppState {
	s.SelectedRoomID = a.RoomID
	return s
}

func (CloseRoom) apply(s AppState) AppState {
	s.SelectedRoomID = ""
	return s
}

func (a LoggedIn) apply(s AppState) AppState {
	s.User.LoggedIn = true
	s.User.Email = a.Email
	s.User.Name = DisplayName(a.Email)
	return Navigate{Page: PageHome}.apply(s)
}

func (LoggedOut) apply(s AppState) AppState {
	s.User = UserState{}
	return Navigate{Page: PageHome}.apply(s)
}

func (a RoomRented) apply(s AppState) AppState {
	s.User.RentedRoomID = a.RoomID
	return Navigate{Page: PageDashboard}.apply(s)
}

// Reduce applies an action and returns the new state. The input is not modified.
func Reduce(s AppState, a Action) AppState {
	if a == nil {
		return s
	}
	return a.apply(s)
}

// DisplayName derives the greeting name from the local part of an email
func DisplayName(email string) string {
	local, _, _ := strings.Cut(strings.TrimSpace(email), "@")
	return local
}
