package server

import "github.com/glowkv/glowkv/internal/keyspace"

// Context carries everything a handler needs: the command's argument
// vector (command name excluded) and the shared keyspace it operates
// against. Handlers never touch the network.
type Context struct {
	Args     []string
	Keyspace *keyspace.Keyspace
}
