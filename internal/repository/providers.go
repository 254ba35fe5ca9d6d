package repository

type Repositories struct {
	Users    UserStore
	Posts    PostStore
	Comments CommentStore
	Settings SettingStore
}

func NewRepositories(users UserStore, posts PostStore, comments CommentStore, settings SettingStore) *Repositories {
	return &Repositories{
		Users:    users,
		Posts:    posts,
		Comments: comments,
		Settings: settings,
	}
}
