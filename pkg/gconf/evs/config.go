// Package evs resolves the configuration of the extended virtual
// synchrony protocol layer from a connection string source.
//
// Several evs timers are bounded by another timer's resolved value:
// the inactivity check and keepalive periods by fractions of the
// suspect timeout, the consensus timeout by multiples of the inactive
// timeout. The resolver knows nothing about such relationships, so
// this package resolves the referenced parameter first and passes its
// value as the bound.
package evs

import (
	"time"

	"github.com/groupwire/gconf/pkg/gconf"
)

// Defaults for the evs.* parameters.
const (
	DefaultViewForgetTimeout   = 5 * time.Minute
	DefaultSuspectTimeout      = 5 * time.Second
	DefaultInactiveTimeout     = 15 * time.Second
	DefaultInactiveCheckPeriod = time.Second
	DefaultConsensusTimeout    = 30 * time.Second
	DefaultKeepalivePeriod     = time.Second
	DefaultJoinRetransPeriod   = 300 * time.Millisecond
	DefaultStatsReportPeriod   = time.Minute
	DefaultSendWindow          = 32
	DefaultUserSendWindow      = 16
)

// MinCheckPeriod is the smallest accepted value for the periodic
// timers: inactivity checks, keepalives and join retransmissions.
const MinCheckPeriod = 100 * time.Millisecond

// Debug log mask flags (evs.debug_log_mask).
const (
	// DebugState traces protocol state changes.
	DebugState gconf.Mask = 1 << iota
	// DebugTimers traces timer scheduling and expiry.
	DebugTimers
	// DebugRetransmission traces message retransmissions.
	DebugRetransmission
	// DebugUserMessages traces user message delivery.
	DebugUserMessages
	// DebugConsensus traces the consensus rounds of view formation.
	DebugConsensus
)

// Info log mask flags (evs.info_log_mask).
const (
	// InfoViewChanges reports delivered view changes.
	InfoViewChanges gconf.Mask = 1 << iota
	// InfoStatistics enables the periodic statistics report.
	InfoStatistics
)

// Config carries the resolved evs.* parameters.
type Config struct {
	// ViewForgetTimeout is how long known group views are remembered.
	ViewForgetTimeout time.Duration

	// SuspectTimeout is how long a node may stay silent before it is
	// put under suspicion.
	SuspectTimeout time.Duration

	// InactiveTimeout is the hard silence limit past which a node is
	// dropped from the group.
	InactiveTimeout time.Duration

	// InactiveCheckPeriod is how often node liveness is checked.
	InactiveCheckPeriod time.Duration

	// ConsensusTimeout bounds how long forming a new group is
	// attempted.
	ConsensusTimeout time.Duration

	// InstallTimeout bounds waiting for an install message during view
	// formation.
	InstallTimeout time.Duration

	// KeepalivePeriod is how often keepalive messages are sent.
	KeepalivePeriod time.Duration

	// JoinRetransPeriod is how often join messages are retransmitted
	// during group formation.
	JoinRetransPeriod time.Duration

	// StatsReportPeriod is how often statistics are reported when
	// InfoStatistics is set in InfoLogMask.
	StatsReportPeriod time.Duration

	// DebugLogMask selects debug diagnostics.
	DebugLogMask gconf.Mask

	// InfoLogMask selects info diagnostics.
	InfoLogMask gconf.Mask

	// SendWindow is the protocol-level in-flight message limit.
	SendWindow int

	// UserSendWindow is the in-flight limit for upper-layer messages.
	UserSendWindow int

	// UseAggregate allows aggregating several user messages into one.
	UseAggregate bool
}

// ConfigFromSource resolves every evs.* parameter against src. Any
// failure is fatal to the caller's startup: configuration errors are
// static and recur identically on retry.
func ConfigFromSource(src *gconf.Source) (Config, error) {
	var cfg Config

	// Suspect and inactive timeouts come first; other timers are
	// bounded by them.
	suspect, err := gconf.GetDefault(src, gconf.EVSSuspectTimeout, gconf.Period(DefaultSuspectTimeout))
	if err != nil {
		return Config{}, err
	}
	cfg.SuspectTimeout = suspect.Duration()

	inactive, err := gconf.GetDefault(src, gconf.EVSInactiveTimeout, gconf.Period(DefaultInactiveTimeout))
	if err != nil {
		return Config{}, err
	}
	cfg.InactiveTimeout = inactive.Duration()

	checkPeriod, err := gconf.GetDefaultRange(src, gconf.EVSInactiveCheckPeriod,
		gconf.Period(DefaultInactiveCheckPeriod), gconf.Period(MinCheckPeriod), suspect/2)
	if err != nil {
		return Config{}, err
	}
	cfg.InactiveCheckPeriod = checkPeriod.Duration()

	consensus, err := gconf.GetDefaultRange(src, gconf.EVSConsensusTimeout,
		gconf.Period(DefaultConsensusTimeout), inactive, inactive*5)
	if err != nil {
		return Config{}, err
	}
	cfg.ConsensusTimeout = consensus.Duration()

	// The catalog declares no default for the install timeout; this
	// layer falls back to the consensus timeout.
	install, err := gconf.GetDefault(src, gconf.EVSInstallTimeout, consensus)
	if err != nil {
		return Config{}, err
	}
	cfg.InstallTimeout = install.Duration()

	keepalive, err := gconf.GetDefaultRange(src, gconf.EVSKeepalivePeriod,
		gconf.Period(DefaultKeepalivePeriod), gconf.Period(MinCheckPeriod), suspect/3)
	if err != nil {
		return Config{}, err
	}
	cfg.KeepalivePeriod = keepalive.Duration()

	joinRetrans, err := gconf.GetDefaultRange(src, gconf.EVSJoinRetransPeriod,
		gconf.Period(DefaultJoinRetransPeriod), gconf.Period(MinCheckPeriod), suspect/3)
	if err != nil {
		return Config{}, err
	}
	cfg.JoinRetransPeriod = joinRetrans.Duration()

	viewForget, err := gconf.GetDefault(src, gconf.EVSViewForgetTimeout, gconf.Period(DefaultViewForgetTimeout))
	if err != nil {
		return Config{}, err
	}
	cfg.ViewForgetTimeout = viewForget.Duration()

	statsReport, err := gconf.GetDefault(src, gconf.EVSStatsReportPeriod, gconf.Period(DefaultStatsReportPeriod))
	if err != nil {
		return Config{}, err
	}
	cfg.StatsReportPeriod = statsReport.Duration()

	if cfg.DebugLogMask, err = gconf.GetDefault(src, gconf.EVSDebugLogMask, gconf.Mask(0)); err != nil {
		return Config{}, err
	}
	if cfg.InfoLogMask, err = gconf.GetDefault(src, gconf.EVSInfoLogMask, gconf.Mask(0)); err != nil {
		return Config{}, err
	}
	if cfg.SendWindow, err = gconf.GetDefault(src, gconf.EVSSendWindow, DefaultSendWindow); err != nil {
		return Config{}, err
	}
	if cfg.UserSendWindow, err = gconf.GetDefault(src, gconf.EVSUserSendWindow, DefaultUserSendWindow); err != nil {
		return Config{}, err
	}
	if cfg.UseAggregate, err = gconf.GetDefault(src, gconf.EVSUseAggregate, true); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
