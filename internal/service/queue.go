package service

import (
	"fmt"
	"sync"
	"time"
)

type QueuedPlayer struct {
	PlayerID string
	JoinedAt time.Time
}

// Queue is a FIFO of players waiting for an opponent.
type Queue struct {
	players []QueuedPlayer
	mu      sync.Mutex
	now     func() time.Time
}

func NewQueue() *Queue {
	return &Queue{
		players: []QueuedPlayer{},
		now:     time.Now,
	}
}

func (q *Queue) AddPlayer(playerID string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, p := range q.players {
		if p.PlayerID == playerID {
			return fmt.Errorf("queue %s: %w", playerID, ErrAlreadyQueued)
		}
	}

	q.players = append(q.players, QueuedPlayer{
		PlayerID: playerID,
		JoinedAt: q.now(),
	})
	return nil
}

// NextPair pops the two players who have been waiting longest.
func (q *Queue) NextPair() (first, second QueuedPlayer, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.players) < 2 {
		return QueuedPlayer{}, QueuedPlayer{}, false
	}
	first, second = q.players[0], q.players[1]
	q.players = q.players[2:]
	return first, second, true
}

// Remove drops playerID from the queue and reports whether it was queued.
func (q *Queue) Remove(playerID string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, p := range q.players {
		if p.PlayerID == playerID {
			q.players = append(q.players[:i], q.players[i+1:]...)
			return true
		}
	}
	return false
}

// Position returns the 1-based place of playerID in the queue, or 0.
func (q *Queue) Position(playerID string) int {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, p := range q.players {
		if p.PlayerID == playerID {
			return i + 1
		}
	}
	return 0
}

func (q *Queue) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.players)
}
