package notify

import "testing"

func TestPublishReachesAllObservers(t *testing.T) {
	hub := NewHub()

	var first, second []Completion
	hub.Subscribe(func(c Completion) { first = append(first, c) })
	hub.Subscribe(func(c Completion) { second = append(second, c) })

	done := Completion{UserID: "avani", LessonID: "addition-basics", Score: 4, Passed: true}
	hub.Publish(done)

	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("deliveries = %d/%d, want 1/1", len(first), len(second))
	}
	if first[0] != done {
		t.Errorf("delivered = %+v, want %+v", first[0], done)
	}
}

func TestPublishWithNoObservers(t *testing.T) {
	hub := NewHub()
	hub.Publish(Completion{UserID: "avani"})
}

func TestSubscribeDuringPublishNotCalled(t *testing.T) {
	hub := NewHub()

	lateCalled := false
	hub.Subscribe(func(Completion) {
		hub.Subscribe(func(Completion) { lateCalled = true })
	})

	hub.Publish(Completion{})
	if lateCalled {
		t.Error("observer registered mid-publish received the same publish")
	}

	hub.Publish(Completion{})
	if !lateCalled {
		t.Error("late observer missed the next publish")
	}
}
