package delivery

import (
	"fmt"
	"sync"

	"github.com/gammazero/workerpool"
	"github.com/joho/godotenv"
	"github.com/schollz/progressbar/v3"
	"github.com/water-guardian/water-guardian-api-poc/internal/notification"
)

// AnalyzeBatch runs AnalyzeScene over many scenes with a bounded worker
// pool. Results keep the order of the input slice. The first error stops the
// batch result; scenes already in flight still finish. When cfg.Notify is
// set, a Discord notification reports the outcome.
func AnalyzeBatch(scenes []ScenePaths, cfg Config) ([]*SceneAnalysis, error) {
	// Webhook URLs and ROOT_PATH may live in a .env next to the caller.
	_ = godotenv.Load()

	workers := cfg.Workers
	if workers <= 0 {
		workers = 4
	}

	var (
		mu          sync.Mutex
		firstErr    error
		stopOnce    sync.Once
		results     = make([]*SceneAnalysis, len(scenes))
		progressBar = progressbar.Default(int64(len(scenes)), "Analyzing scenes")
	)

	wp := workerpool.New(workers)
	for i, scene := range scenes {
		i, scene := i, scene
		wp.Submit(func() {
			analysis, err := AnalyzeScene(scene, cfg)
			if err != nil {
				stopOnce.Do(func() { firstErr = fmt.Errorf("scene %s: %w", scene.Green, err) })
				return
			}
			mu.Lock()
			results[i] = analysis
			progressBar.Add(1)
			mu.Unlock()
		})
	}
	wp.StopWait()

	if firstErr != nil {
		if cfg.Notify {
			if err := notification.SendDiscordErrorNotification(firstErr.Error()); err != nil {
				fmt.Printf("Failed to send notification: %s\n", err.Error())
			}
		}
		return nil, firstErr
	}

	if cfg.Notify {
		totalArea := 0.0
		for _, analysis := range results {
			totalArea += analysis.Stats.TotalArea
		}
		message := fmt.Sprintf("Analyzed %d scenes\nTotal water surface: %.4f km²", len(results), totalArea)
		if err := notification.SendDiscordSuccessNotification(message); err != nil {
			fmt.Printf("Failed to send notification: %s\n", err.Error())
		}
	}
	return results, nil
}
