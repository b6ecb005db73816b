package comment

const (
	// MissingConfigText подставляется, когда нет ни ключа API, ни своего адреса.
	MissingConfigText = "记得休息一下哦！(API Key missing)"
	// EmptyReplyText подставляется, когда модель ответила пустым текстом.
	EmptyReplyText = "摸鱼快乐！"
)

// Fallbacks - офлайн-реплики на случай недоступности сервиса.
var Fallbacks = []string{
	"休息是为了走更远的路！",
	"今天也很棒！",
	"工资正在入账中...",
	"老板看不见的时候就是在赚钱。",
}

// IsFallback сообщает, является ли text одной из офлайн-реплик.
func IsFallback(text string) bool {
	for _, f := range Fallbacks {
		if f == text {
			return true
		}
	}
	return false
}
