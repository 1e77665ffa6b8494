package model

// NotificationKind distinguishes success from failure notices.
type NotificationKind string

const (
	NoticeInfo  NotificationKind = "info"
	NoticeError NotificationKind = "error"
)

// Notification is a structured outcome event emitted to the
// presentation layer after an operation completes.
type Notification struct {
	Kind        NotificationKind
	Title       string
	Description string
}
