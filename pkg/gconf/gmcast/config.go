// Package gmcast resolves the configuration of the group multicast
// transport layer from a connection string source.
package gmcast

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/groupwire/gconf/pkg/gconf"
)

// MaxGroupLength bounds the group name; the handshake reserves 16
// bytes for it.
const MaxGroupLength = 16

// DefaultListenPort is the TCP port used when the listen address does
// not name one.
const DefaultListenPort = 4567

// DefaultListenAddr is used when gmcast.listen_addr is unset: all
// interfaces at the default port.
const DefaultListenAddr = "tcp://0.0.0.0:4567"

// DefaultMCastTTL keeps multicast within a single LAN segment.
const DefaultMCastTTL = 1

// Config carries the resolved gmcast.* parameters.
type Config struct {
	// Group is the group name. Peers accept a connection only when
	// group names match.
	Group string

	// ListenAddr is the listening address in URI form.
	ListenAddr string

	// MCastAddr is the multicast address, empty when the multicast
	// socket binds to the listen interface.
	MCastAddr string

	// MCastPort is the multicast port.
	MCastPort int

	// MCastTTL is the multicast packet TTL.
	MCastTTL int
}

// ConfigFromSource resolves every gmcast.* parameter against src. The
// group name is required; the multicast port defaults to the TCP port
// of the resolved listen address, so the listen address is resolved
// first.
func ConfigFromSource(src *gconf.Source) (Config, error) {
	var cfg Config
	var err error

	group, err := gconf.Get[string](src, gconf.GMCastGroup)
	if err != nil {
		return Config{}, err
	}
	if len(group) > MaxGroupLength {
		return Config{}, &gconf.ParamError{
			Kind:   gconf.KindAboveMax,
			Key:    gconf.GMCastGroup,
			Value:  fmt.Sprintf("%q (%d characters)", group, len(group)),
			Bound:  fmt.Sprintf("%d characters", MaxGroupLength),
			Source: src.String(),
		}
	}
	cfg.Group = group

	if cfg.ListenAddr, err = gconf.GetDefault(src, gconf.GMCastListenAddr, DefaultListenAddr); err != nil {
		return Config{}, err
	}
	listenPort, err := listenPortOf(cfg.ListenAddr)
	if err != nil {
		return Config{}, &gconf.ParamError{
			Kind:   gconf.KindMalformed,
			Key:    gconf.GMCastListenAddr,
			Raw:    cfg.ListenAddr,
			Source: src.String(),
			Cause:  err,
		}
	}

	if cfg.MCastAddr, err = gconf.GetDefault(src, gconf.GMCastMCastAddr, ""); err != nil {
		return Config{}, err
	}
	if cfg.MCastPort, err = gconf.GetDefault(src, gconf.GMCastMCastPort, listenPort); err != nil {
		return Config{}, err
	}
	if cfg.MCastTTL, err = gconf.GetDefaultMin(src, gconf.GMCastMCastTTL, DefaultMCastTTL, 1); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// listenPortOf extracts the TCP port from a listen address URI,
// falling back to the default port when the address names none.
func listenPortOf(addr string) (int, error) {
	u, err := url.Parse(addr)
	if err != nil {
		return 0, err
	}
	p := u.Port()
	if p == "" {
		return DefaultListenPort, nil
	}
	n, err := strconv.Atoi(p)
	if err != nil {
		return 0, err
	}
	return n, nil
}
