package flicker

import "github.com/google/uuid"

// SceneEventType identifies a scene lifecycle event.
type SceneEventType uint8

const (
	EventTimerFired       SceneEventType = iota // a timer expired and its callback ran
	EventEmitterRemoved                         // a removed emitter was dropped from the scene
	EventTweenCompleted                         // a completed tween was dropped from the scene
	EventObjectRemoved                          // a removed object was dropped from the scene
	EventSceneActivated                         // the director made the scene current
	EventSceneDeactivated                       // the director replaced the scene
)

var sceneEventNames = [...]string{
	EventTimerFired:       "timer-fired",
	EventEmitterRemoved:   "emitter-removed",
	EventTweenCompleted:   "tween-completed",
	EventObjectRemoved:    "object-removed",
	EventSceneActivated:   "scene-activated",
	EventSceneDeactivated: "scene-deactivated",
}

func (t SceneEventType) String() string {
	if int(t) < len(sceneEventNames) {
		return sceneEventNames[t]
	}
	return "unknown"
}

// SceneEvent is published to the scene's EventSink during the update pass.
type SceneEvent struct {
	Type    SceneEventType
	SceneID uuid.UUID
	Scene   string
	// Time is the scene clock at publication.
	Time float64
	// Target is the timer, emitter, tween or object concerned, or the scene.
	Target any
}

// EventSink is the interface for optional event forwarding, for example into
// an ECS world (see the ecs package). Sinks must not mutate the scene's
// collections synchronously.
type EventSink interface {
	EmitEvent(event SceneEvent)
}
