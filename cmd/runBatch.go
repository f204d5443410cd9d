package cmd

import (
	"time"

	"go.uber.org/zap"
)

// runBatch executes every command in order against the already-connected
// client. Command failures (non-zero exit, or a fault confined to one
// channel) are recorded and execution continues; a lost connection aborts
// the run immediately and the partial result list is returned. The second
// return value is true only when every command was attempted and succeeded.
//
// The client is owned by the caller; runBatch never closes it. Each command
// runs in its own session, which runRemoteCommand closes. The returned error
// is the connection-loss cause when the run was cut short, nil otherwise.
func runBatch(client sessionClient, commands []string, interval time.Duration, log *zap.Logger) ([]executionResult, bool, error) {
	results := make([]executionResult, 0, len(commands))
	var fatal error

	for i, command := range commands {
		log.Info("executing command",
			zap.Int("position", i+1),
			zap.Int("total", len(commands)),
			zap.String("command", command))

		stdout, stderr, exitStatus, err := runRemoteCommandFunc(client, command)

		// A fault that does not look like connection loss can still mean the
		// transport died under the session (the channel just closes without
		// an exit status); probe before deciding it was a one-off.
		if err != nil && (isConnectionLost(err) || !transportAlive(client)) {
			log.Error("connection lost; aborting remaining commands",
				zap.Int("position", i+1),
				zap.String("command", command),
				zap.Error(err))
			fatal = err
			break
		}

		if err != nil {
			// Per-command channel fault: record it as a failed result with
			// the fault description in stderr and keep going.
			results = append(results, executionResult{
				Position:   i + 1,
				Command:    command,
				ExitStatus: faultExitStatus,
				Stderr:     []byte(err.Error()),
			})
			log.Warn("command could not be executed",
				zap.Int("position", i+1),
				zap.String("command", command),
				zap.Error(err))
		} else {
			results = append(results, executionResult{
				Position:   i + 1,
				Command:    command,
				ExitStatus: exitStatus,
				Stdout:     stdout,
				Stderr:     stderr,
			})
			if exitStatus == 0 {
				log.Info("command succeeded",
					zap.Int("position", i+1),
					zap.Int("exit_status", exitStatus),
					zap.String("stdout", truncateForLog(stdout)))
			} else {
				log.Warn("command failed",
					zap.Int("position", i+1),
					zap.Int("exit_status", exitStatus),
					zap.String("stderr", truncateForLog(stderr)))
			}
		}

		if interval > 0 && i < len(commands)-1 {
			time.Sleep(interval)
		}
	}

	allSucceeded := fatal == nil
	for _, r := range results {
		if !r.succeeded() {
			allSucceeded = false
		}
	}
	return results, allSucceeded, fatal
}

// transportAlive reports whether the connection can still open sessions.
func transportAlive(client sessionClient) bool {
	s, err := client.NewSession()
	if err != nil {
		return false
	}
	_ = s.Close()
	return true
}

// countSucceeded tallies the successful results for the summary line.
func countSucceeded(results []executionResult) int {
	n := 0
	for _, r := range results {
		if r.succeeded() {
			n++
		}
	}
	return n
}
