package enum

type MessageStatus string

const (
	MessageStatusUnread  MessageStatus = "unread"
	MessageStatusRead    MessageStatus = "read"
	MessageStatusReplied MessageStatus = "replied"
)

func (t MessageStatus) String() string {
	return string(t)
}

// DecodeMessageStatus maps a raw string to a MessageStatus, reporting whether
// the value is one of the known statuses.
func DecodeMessageStatus(s string) (MessageStatus, bool) {
	switch MessageStatus(s) {
	case MessageStatusUnread, MessageStatusRead, MessageStatusReplied:
		return MessageStatus(s), true
	default:
		return "", false
	}
}
