package store

const (
	DefaultPrefix  = "moyu_"
	CurrentUserKey = "moyu_current_user_id"

	settingsSuffix = "_settings"
	logsSuffix     = "_logs"
)

func (s *Store) settingsKey(userID string) string {
	return s.prefix + userID + settingsSuffix
}

func (s *Store) logsKey(userID string) string {
	return s.prefix + userID + logsSuffix
}
