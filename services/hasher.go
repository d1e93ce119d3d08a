package services

import (
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// ErrHasherClosed Close後にHash/Verifyを呼んだ場合に返す
var ErrHasherClosed = errors.New("hasher is closed")

type hashResult struct {
	hash string
	err  error
}

type hashJob struct {
	run    func() (string, error)
	result chan<- hashResult
}

// Hasher bcryptの計算を固定数のgoroutineで処理する。登録やログインが集中してもCPUを使い切らない
type Hasher struct {
	jobs      chan hashJob
	done      chan struct{}
	cost      int
	closeOnce sync.Once
}

// NewHasher numWorkers個のワーカーを起動する
func NewHasher(numWorkers int, cost int) *Hasher {
	if numWorkers < 1 {
		numWorkers = 1
	}
	h := &Hasher{
		jobs: make(chan hashJob),
		done: make(chan struct{}),
		cost: cost,
	}
	for i := 0; i < numWorkers; i++ {
		go h.worker()
	}
	return h
}

func (h *Hasher) worker() {
	for {
		select {
		case <-h.done:
			return
		case job := <-h.jobs:
			hash, err := job.run()
			job.result <- hashResult{hash: hash, err: err}
		}
	}
}

func (h *Hasher) submit(run func() (string, error)) (string, error) {
	result := make(chan hashResult, 1)
	select {
	case <-h.done:
		return "", ErrHasherClosed
	case h.jobs <- hashJob{run: run, result: result}:
	}
	r := <-result
	return r.hash, r.err
}

// Hash パスワードのbcryptハッシュ（ソルト付き）を返す
func (h *Hasher) Hash(password string) (string, error) {
	return h.submit(func() (string, error) {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
		return string(hash), err
	})
}

// Verify パスワードがハッシュと一致するか
func (h *Hasher) Verify(hash, password string) bool {
	_, err := h.submit(func() (string, error) {
		return "", bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	})
	return err == nil
}

// Close ワーカーを停止する。以降のHash/VerifyはErrHasherClosedで失敗する
func (h *Hasher) Close() {
	h.closeOnce.Do(func() {
		close(h.done)
	})
}
