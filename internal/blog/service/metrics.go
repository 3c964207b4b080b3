package service

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts credential and mail outcomes. A nil *Metrics records
// nothing, so services work without a registry.
type Metrics struct {
	Logins        *prometheus.CounterVec
	ResetRequests *prometheus.CounterVec
	MailSent      *prometheus.CounterVec
}

// NewMetrics creates and registers the service metrics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Logins: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ngxblog_logins_total",
				Help: "Login attempts by result",
			},
			[]string{"result"},
		),
		ResetRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ngxblog_reset_requests_total",
				Help: "Password reset requests by outcome",
			},
			[]string{"outcome"},
		),
		MailSent: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ngxblog_mail_sent_total",
				Help: "Outbound emails by result",
			},
			[]string{"result"},
		),
	}

	reg.MustRegister(m.Logins, m.ResetRequests, m.MailSent)
	return m
}

func (m *Metrics) login(result string) {
	if m != nil {
		m.Logins.WithLabelValues(result).Inc()
	}
}

func (m *Metrics) reset(outcome string) {
	if m != nil {
		m.ResetRequests.WithLabelValues(outcome).Inc()
	}
}

func (m *Metrics) mail(result string) {
	if m != nil {
		m.MailSent.WithLabelValues(result).Inc()
	}
}
