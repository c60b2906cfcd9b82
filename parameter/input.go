package parameter

import "time"

// KeyHoldWindow keeps a key "held" after its last press or auto-repeat
// Terminals never report key release, so held state decays instead
const KeyHoldWindow = 140 * time.Millisecond
