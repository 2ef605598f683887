package gconf

import "fmt"

// Recognized configuration keys. Keys are case-sensitive and
// dot-namespaced under the scheme that owns them.
const (
	// TCPScheme selects the plain TCP stream transport.
	TCPScheme = "tcp"

	// UDPScheme selects the plain UDP datagram transport.
	UDPScheme = "udp"

	// SocketNonBlocking ("socket.non_blocking") is a 0/1 flag putting
	// the socket in non-blocking mode.
	SocketNonBlocking = "socket.non_blocking"

	// GMCastScheme selects the group multicast transport.
	GMCastScheme = "gmcast"

	// GMCastGroup ("gmcast.group") names the group, at most 16
	// characters. Peers accept a connection only when group names
	// match.
	GMCastGroup = "gmcast.group"

	// GMCastListenAddr ("gmcast.listen_addr") is the listening address
	// in URI form, for example tcp://192.168.3.1:4567. Unset means all
	// interfaces at port 4567.
	GMCastListenAddr = "gmcast.listen_addr"

	// GMCastMCastAddr ("gmcast.mcast_addr") is the multicast address.
	// The multicast socket binds to the listen interface by default.
	GMCastMCastAddr = "gmcast.mcast_addr"

	// GMCastMCastPort ("gmcast.mcast_port") is the multicast port,
	// defaulting to the TCP listen port.
	GMCastMCastPort = "gmcast.mcast_port"

	// GMCastMCastTTL ("gmcast.mcast_ttl") limits multicast packet TTL.
	// The default of 1 keeps multicast within one LAN segment.
	GMCastMCastTTL = "gmcast.mcast_ttl"

	// EVSScheme selects the extended virtual synchrony protocol layer.
	EVSScheme = "evs"

	// EVSViewForgetTimeout ("evs.view_forget_timeout") controls how
	// long known group views are remembered to filter delayed messages
	// from views that are no longer live.
	EVSViewForgetTimeout = "evs.view_forget_timeout"

	// EVSSuspectTimeout ("evs.suspect_timeout") is how long a node may
	// stay silent before it is put under suspicion. A suspicion shared
	// by the majority drops the node and forms a new view immediately.
	EVSSuspectTimeout = "evs.suspect_timeout"

	// EVSInactiveTimeout ("evs.inactive_timeout") is the hard silence
	// limit: past it a node is dropped even if it comes back during
	// view formation.
	EVSInactiveTimeout = "evs.inactive_timeout"

	// EVSInactiveCheckPeriod ("evs.inactive_check_period") is how often
	// node liveness is checked.
	EVSInactiveCheckPeriod = "evs.inactive_check_period"

	// EVSConsensusTimeout ("evs.consensus_timeout") bounds how long
	// forming a new group is attempted before every node falls back to
	// a singleton group.
	EVSConsensusTimeout = "evs.consensus_timeout"

	// EVSInstallTimeout ("evs.install_timeout") bounds waiting for an
	// install message during view formation.
	EVSInstallTimeout = "evs.install_timeout"

	// EVSKeepalivePeriod ("evs.keepalive_period") is how often
	// keepalive messages are sent. Liveness is judged from keepalives,
	// so it must stay well under the suspect timeout.
	EVSKeepalivePeriod = "evs.keepalive_period"

	// EVSJoinRetransPeriod ("evs.join_retrans_period") is how often
	// join messages are retransmitted during group formation.
	EVSJoinRetransPeriod = "evs.join_retrans_period"

	// EVSStatsReportPeriod ("evs.stats_report_period") is how often
	// statistics are reported, when enabled through the info log mask.
	EVSStatsReportPeriod = "evs.stats_report_period"

	// EVSDebugLogMask ("evs.debug_log_mask") selects which debug
	// diagnostics are emitted when debug logging is on.
	EVSDebugLogMask = "evs.debug_log_mask"

	// EVSInfoLogMask ("evs.info_log_mask") selects which info
	// diagnostics are emitted.
	EVSInfoLogMask = "evs.info_log_mask"

	// EVSSendWindow ("evs.send_window") is how many messages the
	// protocol layer may have in flight without acknowledgement.
	EVSSendWindow = "evs.send_window"

	// EVSUserSendWindow ("evs.user_send_window") is the in-flight limit
	// for messages initiated by the upper layer.
	EVSUserSendWindow = "evs.user_send_window"

	// EVSUseAggregate ("evs.use_aggregate") allows aggregating several
	// user messages into one.
	EVSUseAggregate = "evs.use_aggregate"

	// PCScheme selects the primary component protocol layer.
	PCScheme = "pc"
)

// ValueType classifies a catalog entry's value domain.
type ValueType int

const (
	// TypeScheme marks a bare scheme token carrying no value.
	TypeScheme ValueType = iota
	// TypeBool marks a 0/1 or true/false value.
	TypeBool
	// TypeInt marks a decimal integer.
	TypeInt
	// TypeString marks an uninterpreted string.
	TypeString
	// TypeMask marks a bitmask integer.
	TypeMask
	// TypePeriod marks an ISO-8601 period.
	TypePeriod
)

// String returns the type name.
func (t ValueType) String() string {
	switch t {
	case TypeScheme:
		return "scheme"
	case TypeBool:
		return "bool"
	case TypeInt:
		return "int"
	case TypeString:
		return "string"
	case TypeMask:
		return "mask"
	case TypePeriod:
		return "period"
	default:
		return "unknown"
	}
}

// Spec documents one recognized key: its owning scheme, value type,
// textual default and bound expressions. A bound may reference another
// key's resolved value (for example "evs.suspect_timeout/2"); such
// bounds are documentation only, computed by the layer that resolves
// the referenced key first. The name, type, default and bounds of a key
// are fixed together here and nowhere else.
type Spec struct {
	Key     string
	Scheme  string
	Type    ValueType
	Default string
	Min     string
	Max     string
}

// specs lists every recognized key in layering order: transport
// schemes first, then gmcast, evs and pc.
var specs = []Spec{
	{Key: TCPScheme, Type: TypeScheme},
	{Key: UDPScheme, Type: TypeScheme},
	{Key: SocketNonBlocking, Scheme: "socket", Type: TypeBool},
	{Key: GMCastScheme, Type: TypeScheme},
	{Key: GMCastGroup, Scheme: GMCastScheme, Type: TypeString, Max: "16 characters"},
	{Key: GMCastListenAddr, Scheme: GMCastScheme, Type: TypeString, Default: "tcp://0.0.0.0:4567"},
	{Key: GMCastMCastAddr, Scheme: GMCastScheme, Type: TypeString, Default: "listen interface"},
	{Key: GMCastMCastPort, Scheme: GMCastScheme, Type: TypeInt, Default: "listen TCP port"},
	{Key: GMCastMCastTTL, Scheme: GMCastScheme, Type: TypeInt, Default: "1", Min: "1"},
	{Key: EVSScheme, Type: TypeScheme},
	{Key: EVSViewForgetTimeout, Scheme: EVSScheme, Type: TypePeriod, Default: "PT5M"},
	{Key: EVSSuspectTimeout, Scheme: EVSScheme, Type: TypePeriod, Default: "PT5S"},
	{Key: EVSInactiveTimeout, Scheme: EVSScheme, Type: TypePeriod, Default: "PT15S"},
	{Key: EVSInactiveCheckPeriod, Scheme: EVSScheme, Type: TypePeriod, Default: "PT1S", Min: "PT0.1S", Max: "evs.suspect_timeout/2"},
	{Key: EVSConsensusTimeout, Scheme: EVSScheme, Type: TypePeriod, Default: "PT30S", Min: "evs.inactive_timeout", Max: "evs.inactive_timeout*5"},
	{Key: EVSInstallTimeout, Scheme: EVSScheme, Type: TypePeriod},
	{Key: EVSKeepalivePeriod, Scheme: EVSScheme, Type: TypePeriod, Default: "PT1S", Min: "PT0.1S", Max: "evs.suspect_timeout/3"},
	{Key: EVSJoinRetransPeriod, Scheme: EVSScheme, Type: TypePeriod, Default: "PT0.3S", Min: "PT0.1S", Max: "evs.suspect_timeout/3"},
	{Key: EVSStatsReportPeriod, Scheme: EVSScheme, Type: TypePeriod, Default: "PT1M"},
	{Key: EVSDebugLogMask, Scheme: EVSScheme, Type: TypeMask, Default: "0x0"},
	{Key: EVSInfoLogMask, Scheme: EVSScheme, Type: TypeMask, Default: "0x0"},
	{Key: EVSSendWindow, Scheme: EVSScheme, Type: TypeInt, Default: "32"},
	{Key: EVSUserSendWindow, Scheme: EVSScheme, Type: TypeInt, Default: "16"},
	{Key: EVSUseAggregate, Scheme: EVSScheme, Type: TypeBool, Default: "true"},
	{Key: PCScheme, Type: TypeScheme},
}

var catalog = make(map[string]Spec, len(specs))

// The registry is fixed before any resolution can happen and never
// mutated afterwards, so unsynchronized concurrent reads are safe.
func init() {
	for _, sp := range specs {
		if _, dup := catalog[sp.Key]; dup {
			panic(fmt.Sprintf("gconf: duplicate catalog key %q", sp.Key))
		}
		if err := sp.validate(); err != nil {
			panic(fmt.Sprintf("gconf: catalog key %q: %v", sp.Key, err))
		}
		catalog[sp.Key] = sp
	}
}

// validate rejects definitions whose static bounds are inverted. A
// bound that references another key cannot be evaluated here and is
// skipped.
func (sp Spec) validate() error {
	if sp.Min == "" || sp.Max == "" {
		return nil
	}
	if sp.Type != TypePeriod {
		return nil
	}
	min, errMin := ParsePeriod(sp.Min)
	max, errMax := ParsePeriod(sp.Max)
	if errMin != nil || errMax != nil {
		// Cross-key bound expression.
		return nil
	}
	if min > max {
		return fmt.Errorf("min %s greater than max %s", sp.Min, sp.Max)
	}
	return nil
}

// Lookup returns the Spec for key.
func Lookup(key string) (Spec, bool) {
	sp, ok := catalog[key]
	return sp, ok
}

// Keys returns every recognized key in catalog declaration order.
func Keys() []string {
	out := make([]string, len(specs))
	for i, sp := range specs {
		out[i] = sp.Key
	}
	return out
}
