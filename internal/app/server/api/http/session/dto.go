package session

type statusOutput struct {
	Body statusResponse
}

type statusResponse struct {
	State  string `json:"state" enum:"logged_out,logging_in,logged_in" doc:"Состояние сессии"`
	Phase  string `json:"phase" enum:"idle,awaiting_comment" doc:"Ожидается ли комментарий"`
	UserID string `json:"userId,omitempty" doc:"Активный пользователь"`
}

type loginInput struct {
	Body loginRequest
}

type loginRequest struct {
	Username string `json:"username" minLength:"1" maxLength:"64" doc:"Имя пользователя, пароль не нужен"`
}
