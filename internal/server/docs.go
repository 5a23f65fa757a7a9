package server

import "github.com/glowkv/glowkv/internal/resp"

type handlerFunc func(ctx *Context) resp.Value

// commandMetadata mirrors the arity convention Redis itself uses: a
// positive arity is exact (including the command name), a negative
// arity means "at least abs(n)".
type commandMetadata struct {
	arity   int
	handler handlerFunc
}

// newCommandRegistry builds the command table; kept as a plain
// function rather than an init-time global so tests can build a fresh
// one per Engine without worrying about shared mutable map state.
func newCommandRegistry() map[string]commandMetadata {
	return map[string]commandMetadata{
		"PING": {-1, ping},

		"GET": {2, get},
		"SET": {3, set},
		"DEL": {-2, del},

		"EXISTS": {-2, exists},
		"EXPIRE": {3, expire},
		"TTL":    {2, ttlCmd},
		"KEYS":   {2, keysCmd},

		"FLUSHALL": {1, flushAll},

		"INCR": {2, incr},
		"DECR": {2, decr},

		"LPUSH":  {-3, lpush},
		"RPUSH":  {-3, rpush},
		"LPOP":   {2, lpop},
		"RPOP":   {2, rpop},
		"LLEN":   {2, llen},
		"LRANGE": {4, lrange},

		"SADD":      {-3, sadd},
		"SREM":      {-3, srem},
		"SMEMBERS":  {2, smembers},
		"SCARD":     {2, scard},
		"SISMEMBER": {3, sismember},

		"HSET":    {-4, hset},
		"HGET":    {3, hget},
		"HDEL":    {-3, hdel},
		"HKEYS":   {2, hkeys},
		"HVALS":   {2, hvals},
		"HGETALL": {2, hgetall},
	}
}

// arityOK checks argc (the full request, command name included)
// against arity using the positive-exact / negative-minimum
// convention.
func arityOK(arity, argc int) bool {
	if arity >= 0 {
		return argc == arity
	}
	return argc >= -arity
}
