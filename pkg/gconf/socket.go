package gconf

// NonBlocking resolves the socket.non_blocking flag. Transports that
// leave it unset run their sockets in blocking mode.
func NonBlocking(src *Source) (bool, error) {
	return GetDefault(src, SocketNonBlocking, false)
}
