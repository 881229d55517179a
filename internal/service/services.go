package service

type Services struct {
	Fetcher Fetcher
	Forms   *FormService
}

func NewServices(b Backend) *Services {
	fetcher := NewFetchService(b)
	return &Services{
		Fetcher: fetcher,
		Forms:   NewFormService(b, fetcher),
	}
}
