package sessions

import "time"

//go:generate mockgen -destination=mock/mock_time_provider.go -package=mocksessions -source=time_provider.go

type TimeProvider interface {
	Now() time.Time
}

type RealTimeProvider struct{}

func (r *RealTimeProvider) Now() time.Time {
	return time.Now()
}
