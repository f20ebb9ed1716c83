package domain

// DashboardRepository holds the latest complete refresh result. Save must
// reject states whose generation is older than the stored one so that a slow
// cycle can never overwrite a newer snapshot.
type DashboardRepository interface {
	Save(state DashboardState) bool
	Get() (DashboardState, bool)
}

// WatchlistRepository persists the set of visible coin ids.
type WatchlistRepository interface {
	Load() ([]string, error)
	Save(ids []string) error
}

// DeviceTokenRepository manages FCM device tokens for push notifications.
type DeviceTokenRepository interface {
	Register(token, platform string) error
	Unregister(token string) error
	Tokens() ([]string, error)
	Count() (int, error)
}
