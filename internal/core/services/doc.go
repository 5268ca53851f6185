// Package services implements the driving port interfaces.
// Services contain the client-side interaction core: the conversation
// state machine, the graph assembly orchestration, and the single-flight
// job triggers. All state is in-memory for the lifetime of the process;
// the only suspension points are calls through the driven BackendClient.
package services
