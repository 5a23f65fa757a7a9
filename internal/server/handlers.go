package server

import (
	"errors"
	"strconv"

	"github.com/glowkv/glowkv/internal/keyspace"
	"github.com/glowkv/glowkv/internal/resp"
)

// errorReply maps an error from the keyspace package to a RESP error
// reply. ErrWrongType's text already carries the "WRONGTYPE" prefix
// Redis clients expect; everything else gets a plain "ERR " prefix.
func errorReply(err error) resp.Value {
	if errors.Is(err, keyspace.ErrWrongType) {
		return resp.MakeError(err.Error())
	}
	return resp.MakeErrorf("ERR %s", err.Error())
}

func parseInt(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, keyspace.ErrNotInteger
	}
	return n, nil
}

func ping(ctx *Context) resp.Value {
	if len(ctx.Args) == 0 {
		return resp.MakeSimpleString("PONG")
	}
	return resp.MakeSimpleString(ctx.Args[0])
}

func get(ctx *Context) resp.Value {
	v, ok, err := ctx.Keyspace.StringGet(ctx.Args[0])
	if err != nil {
		return errorReply(err)
	}
	if !ok {
		return resp.MakeNilBulk()
	}
	return resp.MakeSimpleString(v)
}

func set(ctx *Context) resp.Value {
	ctx.Keyspace.StringSet(ctx.Args[0], ctx.Args[1])
	return resp.MakeSimpleString("OK")
}

func del(ctx *Context) resp.Value {
	var removed int64
	for _, key := range ctx.Args {
		if ctx.Keyspace.Delete(key) {
			removed++
		}
	}
	return resp.MakeInteger(removed)
}

func exists(ctx *Context) resp.Value {
	var n int64
	for _, key := range ctx.Args {
		if ctx.Keyspace.Exists(key) {
			n++
		}
	}
	return resp.MakeInteger(n)
}

func expire(ctx *Context) resp.Value {
	seconds, err := parseInt(ctx.Args[1])
	if err != nil {
		return errorReply(err)
	}
	if ctx.Keyspace.SetExpiry(ctx.Args[0], seconds) {
		return resp.MakeInteger(1)
	}
	return resp.MakeInteger(0)
}

func ttlCmd(ctx *Context) resp.Value {
	return resp.MakeInteger(ctx.Keyspace.TTL(ctx.Args[0]))
}

func keysCmd(ctx *Context) resp.Value {
	return resp.MakeSimpleStringArray(ctx.Keyspace.KeysMatching(ctx.Args[0]))
}

func flushAll(ctx *Context) resp.Value {
	ctx.Keyspace.FlushAll()
	return resp.MakeSimpleString("OK")
}

func incr(ctx *Context) resp.Value {
	n, err := ctx.Keyspace.IncrBy(ctx.Args[0], 1)
	if err != nil {
		return errorReply(err)
	}
	return resp.MakeInteger(n)
}

func decr(ctx *Context) resp.Value {
	n, err := ctx.Keyspace.IncrBy(ctx.Args[0], -1)
	if err != nil {
		return errorReply(err)
	}
	return resp.MakeInteger(n)
}

func lpush(ctx *Context) resp.Value {
	n, err := ctx.Keyspace.LPush(ctx.Args[0], ctx.Args[1:]...)
	if err != nil {
		return errorReply(err)
	}
	return resp.MakeInteger(n)
}

func rpush(ctx *Context) resp.Value {
	n, err := ctx.Keyspace.RPush(ctx.Args[0], ctx.Args[1:]...)
	if err != nil {
		return errorReply(err)
	}
	return resp.MakeInteger(n)
}

func lpop(ctx *Context) resp.Value {
	v, ok, err := ctx.Keyspace.LPop(ctx.Args[0])
	if err != nil {
		return errorReply(err)
	}
	if !ok {
		return resp.MakeNilBulk()
	}
	return resp.MakeSimpleString(v)
}

func rpop(ctx *Context) resp.Value {
	v, ok, err := ctx.Keyspace.RPop(ctx.Args[0])
	if err != nil {
		return errorReply(err)
	}
	if !ok {
		return resp.MakeNilBulk()
	}
	return resp.MakeSimpleString(v)
}

func llen(ctx *Context) resp.Value {
	n, err := ctx.Keyspace.LLen(ctx.Args[0])
	if err != nil {
		return errorReply(err)
	}
	return resp.MakeInteger(n)
}

func lrange(ctx *Context) resp.Value {
	start, err := parseInt(ctx.Args[1])
	if err != nil {
		return errorReply(err)
	}
	stop, err := parseInt(ctx.Args[2])
	if err != nil {
		return errorReply(err)
	}
	vals, err := ctx.Keyspace.LRange(ctx.Args[0], start, stop)
	if err != nil {
		return errorReply(err)
	}
	return resp.MakeSimpleStringArray(vals)
}

func sadd(ctx *Context) resp.Value {
	n, err := ctx.Keyspace.SAdd(ctx.Args[0], ctx.Args[1:]...)
	if err != nil {
		return errorReply(err)
	}
	return resp.MakeInteger(n)
}

func srem(ctx *Context) resp.Value {
	n, err := ctx.Keyspace.SRem(ctx.Args[0], ctx.Args[1:]...)
	if err != nil {
		return errorReply(err)
	}
	return resp.MakeInteger(n)
}

func smembers(ctx *Context) resp.Value {
	members, err := ctx.Keyspace.SMembers(ctx.Args[0])
	if err != nil {
		return errorReply(err)
	}
	return resp.MakeSimpleStringArray(members)
}

func scard(ctx *Context) resp.Value {
	n, err := ctx.Keyspace.SCard(ctx.Args[0])
	if err != nil {
		return errorReply(err)
	}
	return resp.MakeInteger(n)
}

func sismember(ctx *Context) resp.Value {
	ok, err := ctx.Keyspace.SIsMember(ctx.Args[0], ctx.Args[1])
	if err != nil {
		return errorReply(err)
	}
	if ok {
		return resp.MakeInteger(1)
	}
	return resp.MakeInteger(0)
}

func hset(ctx *Context) resp.Value {
	rest := ctx.Args[1:]
	if len(rest)%2 != 0 {
		return resp.MakeError("ERR syntax error")
	}
	fields := make(map[string]string, len(rest)/2)
	for i := 0; i < len(rest); i += 2 {
		fields[rest[i]] = rest[i+1]
	}
	n, err := ctx.Keyspace.HSet(ctx.Args[0], fields)
	if err != nil {
		return errorReply(err)
	}
	return resp.MakeInteger(n)
}

func hget(ctx *Context) resp.Value {
	v, ok, err := ctx.Keyspace.HGet(ctx.Args[0], ctx.Args[1])
	if err != nil {
		return errorReply(err)
	}
	if !ok {
		return resp.MakeNilBulk()
	}
	return resp.MakeSimpleString(v)
}

func hdel(ctx *Context) resp.Value {
	n, err := ctx.Keyspace.HDel(ctx.Args[0], ctx.Args[1:]...)
	if err != nil {
		return errorReply(err)
	}
	return resp.MakeInteger(n)
}

func hkeys(ctx *Context) resp.Value {
	keys, err := ctx.Keyspace.HKeys(ctx.Args[0])
	if err != nil {
		return errorReply(err)
	}
	return resp.MakeSimpleStringArray(keys)
}

func hvals(ctx *Context) resp.Value {
	vals, err := ctx.Keyspace.HVals(ctx.Args[0])
	if err != nil {
		return errorReply(err)
	}
	return resp.MakeSimpleStringArray(vals)
}

func hgetall(ctx *Context) resp.Value {
	all, err := ctx.Keyspace.HGetAll(ctx.Args[0])
	if err != nil {
		return errorReply(err)
	}
	return resp.MakeSimpleStringArray(all)
}
