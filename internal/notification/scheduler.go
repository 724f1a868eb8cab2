package notification

import (
	"context"
	"log"
	"time"

	"go.uber.org/fx"
)

// Scheduler periodically delivers queued notifications to devices.
type Scheduler struct {
	service *Service
}

func NewScheduler(service *Service) *Scheduler {
	return &Scheduler{service: service}
}

// StartScheduler starts the background goroutine that drains the queue once
// a minute for the lifetime of the application.
func (s *Scheduler) StartScheduler(lc fx.Lifecycle) {
	ticker := time.NewTicker(time.Minute)
	done := make(chan bool)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Println("Starting notification delivery scheduler ...")
			go func() {
				schedulerCtx := context.Background()
				for {
					select {
					case <-ticker.C:
						s.service.DeliverQueued(schedulerCtx)
					case <-done:
						return
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping notification delivery scheduler ...")
			ticker.Stop()
			done <- true
			return nil
		},
	})
}
