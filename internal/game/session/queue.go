package session

import (
	"sync"

	"github.com/raccoonfox/hide-and-seek/internal/protocol"
)

// RequestQueue 玩家请求队列，多生产者（传输层）单消费者（回合循环）
// 消费端按快照方式处理：先取长度 N，再恰好弹出 N 条，
// 处理期间新入队的请求留到下一个 tick
type RequestQueue struct {
	mu    sync.Mutex
	items []*protocol.PlayerRequestPayload
}

// NewRequestQueue 创建请求队列
func NewRequestQueue() *RequestQueue {
	return &RequestQueue{}
}

// Push 入队一条请求
func (q *RequestQueue) Push(req *protocol.PlayerRequestPayload) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, req)
}

// Poll 弹出队首请求，队列为空时返回 nil
func (q *RequestQueue) Poll() *protocol.PlayerRequestPayload {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		return nil
	}
	req := q.items[0]
	q.items[0] = nil
	q.items = q.items[1:]
	return req
}

// Len 当前队列长度
func (q *RequestQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Clear 丢弃所有未处理的请求（阶段开始时清除过期请求）
func (q *RequestQueue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = nil
}
