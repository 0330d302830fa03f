package responder

// Commands
const (
	CommandStart = "/start"
)

// Reply templates
const (
	TemplateStart = `👋 Hi, %s!

I'm a bot that surfaces information about users and channels.

📋 What I can do:
• Answer the /start command
• Analyze forwarded messages
• Show user and channel IDs

📤 Forward me a message from another chat or channel, and I'll show everything I know about it!`

	HeaderForwardedInfo = "📤 Forwarded message info:"
	HeaderPlainInfo     = "📝 Message info:"

	HeaderRequestedBy = "👤 Requested by:"
	HeaderSender      = "👤 Sender:"
	HeaderForwardUser = "📤 Forwarded from user:"
	HeaderForwardChat = "📢 Forwarded from chat/channel:"
	HeaderForwardDate = "📅 Forwarded on:"
	HeaderCurrentChat = "💬 Current chat:"
	HeaderPlainChat   = "💬 Chat:"

	FooterForwardHint = "💡 Tip: forward me a message from another chat to get more information!"
)

// Block field labels
const (
	LabelID        = "ID"
	LabelFirstName = "First name"
	LabelLastName  = "Last name"
	LabelUsername  = "Username"
	LabelType      = "Type"
	LabelTitle     = "Title"
	LabelDate      = "Date"
)

// ForwardDateLayout renders forward dates as DD.MM.YYYY HH:MM:SS.
const ForwardDateLayout = "02.01.2006 15:04:05"

// Log prefixes
const (
	LogPrefixHandle = "internal.responder.Handle"
)
