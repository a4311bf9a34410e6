package groupme

// SenderTypeBot marks callbacks for messages the bot posted itself.
const SenderTypeBot = "bot"

// Message is the payload GroupMe POSTs to a bot's callback URL.
// Only ID, Text, Name and SenderType drive moderation; the rest is
// carried for logging.
type Message struct {
	ID          string       `json:"id"`
	Text        string       `json:"text"`
	Name        string       `json:"name"`
	SenderType  string       `json:"sender_type"`
	SenderID    string       `json:"sender_id,omitempty"`
	UserID      string       `json:"user_id,omitempty"`
	GroupID     string       `json:"group_id,omitempty"`
	SourceGUID  string       `json:"source_guid,omitempty"`
	AvatarURL   string       `json:"avatar_url,omitempty"`
	CreatedAt   int64        `json:"created_at,omitempty"`
	System      bool         `json:"system,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// Attachment is kept loose; GroupMe sends several shapes (image, location, mentions...).
type Attachment struct {
	Type string `json:"type"`
	URL  string `json:"url,omitempty"`
}

// IsEmpty reports whether the callback carried no usable fields,
// which is how a "{}" body decodes.
func (m *Message) IsEmpty() bool {
	return m.ID == "" && m.Text == "" && m.Name == "" && m.SenderType == "" &&
		m.SenderID == "" && m.UserID == "" && m.GroupID == "" && m.SourceGUID == "" &&
		m.AvatarURL == "" && m.CreatedAt == 0 && !m.System && len(m.Attachments) == 0
}

// BotPost is the body of POST /bots/post.
type BotPost struct {
	BotID string `json:"bot_id"`
	Text  string `json:"text"`
}
