// Package audio synthesizes the heartbeat that accompanies the pulsing
// heart. Sounds are generated with beep; nothing is loaded from disk.
package audio
