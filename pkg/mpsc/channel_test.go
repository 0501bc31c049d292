package mpsc

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/aid/pkg/rop/solo"
)

func TestChannel_SendTryRecv(t *testing.T) {
	t.Parallel()

	tx, rx := NewChannel[string]()

	assert.True(t, tx.Send("a").IsOk())
	assert.True(t, tx.Send("b").IsOk())

	assert.True(t, solo.Contains(rx.TryRecv(), "a"))
	assert.True(t, solo.Contains(rx.TryRecv(), "b"))
	assert.True(t, solo.ContainsErr(rx.TryRecv(), ErrEmptyQueue))
}

func TestChannel_DisconnectedAfterAllSendersClose(t *testing.T) {
	t.Parallel()

	tx, rx := NewChannel[int]()
	tx2 := tx.Clone()

	tx.Send(1)
	tx.Close()
	assert.True(t, solo.Contains(rx.TryRecv(), 1))
	assert.True(t, solo.ContainsErr(rx.TryRecv(), ErrEmptyQueue), "a clone is still open")

	tx2.Send(2)
	tx2.Close()
	tx2.Close()

	assert.True(t, solo.Contains(rx.TryRecv(), 2), "queued values survive the last close")
	assert.True(t, solo.ContainsErr(rx.TryRecv(), ErrSender))
}

func TestChannel_SendOnClosedSender(t *testing.T) {
	t.Parallel()

	tx, _ := NewChannel[int]()
	tx.Close()

	res := tx.Send(7)
	require.True(t, res.IsErr())
	se := res.Err()
	assert.Equal(t, 7, se.Value)
	assert.Equal(t, ErrSender, se.Cause)
}

func TestChannel_CloneAfterDisconnectStaysDisconnected(t *testing.T) {
	t.Parallel()

	tx, rx := NewChannel[int]()
	tx.Close()
	require.True(t, solo.ContainsErr(rx.TryRecv(), ErrSender))

	tx2 := tx.Clone()
	assert.True(t, solo.ContainsErr(rx.TryRecv(), ErrSender), "a clone must not reconnect the channel")

	res := tx2.Send(5)
	require.True(t, res.IsErr())
	assert.Equal(t, ErrSender, res.Err().Cause)
	assert.True(t, solo.ContainsErr(rx.TryRecv(), ErrSender))

	tx2.Close()
	assert.True(t, solo.ContainsErr(rx.TryRecv(), ErrSender))
}

func TestChannel_CloneOfClosedSenderIsClosed(t *testing.T) {
	t.Parallel()

	tx, rx := NewChannel[int]()
	open := tx.Clone()
	tx.Close()

	dead := tx.Clone()
	assert.True(t, dead.Send(1).IsErr())

	open.Close()
	assert.True(t, solo.ContainsErr(rx.TryRecv(), ErrSender), "the closed clone must not hold the channel open")
}

func TestChannel_SendRacingCloseIsDeliveredOrRejected(t *testing.T) {
	t.Parallel()

	for range 200 {
		tx, rx := NewChannel[int]()

		closed := make(chan struct{})
		go func() {
			defer close(closed)
			tx.Close()
		}()
		sent := tx.Send(1).IsOk()
		<-closed

		if sent {
			require.True(t, solo.Contains(rx.TryRecv(), 1), "an accepted value must reach the receiver")
		}
		require.True(t, solo.ContainsErr(rx.TryRecv(), ErrSender))
	}
}

func TestChannel_SendAfterReceiverClose(t *testing.T) {
	t.Parallel()

	tx, rx := NewChannel[int]()
	tx.Send(1)
	rx.Close()
	rx.Close()

	res := tx.Send(2)
	require.True(t, res.IsErr())
	se := res.Err()
	assert.Equal(t, 2, se.Value)
	assert.True(t, errors.Is(se, ErrReceiver))

	assert.True(t, solo.ContainsErr(rx.TryRecv(), ErrReceiver))
}

func TestChannel_RecvWaitsForSend(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	tx, rx := NewChannel[int]()
	go func() {
		time.Sleep(20 * time.Millisecond)
		tx.Send(42)
	}()

	res := rx.Recv(ctx)
	require.True(t, res.IsOk(), "got %v", res)
	assert.Equal(t, 42, res.Value())
}

func TestChannel_RecvReportsDisconnect(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	tx, rx := NewChannel[int]()
	go func() {
		time.Sleep(20 * time.Millisecond)
		tx.Close()
	}()

	res := rx.Recv(ctx)
	require.True(t, res.IsErr())
	assert.ErrorIs(t, res.Err(), ErrSender)
}

func TestChannel_RecvHonoursContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	tx, rx := NewChannel[int]()
	defer tx.Close()

	res := rx.Recv(ctx)
	require.True(t, res.IsErr())
	assert.ErrorIs(t, res.Err(), context.DeadlineExceeded)
}

func TestChannel_ManyProducers(t *testing.T) {
	t.Parallel()

	const producers = 6
	const perProducer = 300

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, rx := NewChannel[int]()
	wg := &sync.WaitGroup{}
	for range producers {
		s := tx.Clone()
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer s.Close()
			for i := range perProducer {
				assert.True(t, s.Send(i).IsOk())
			}
		}()
	}
	tx.Close()

	received := 0
	for {
		res := rx.Recv(ctx)
		if res.IsErr() {
			require.ErrorIs(t, res.Err(), ErrSender)
			break
		}
		received++
	}
	wg.Wait()

	assert.Equal(t, producers*perProducer, received)
}
