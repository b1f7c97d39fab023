package util

var GLOBAL_LOG_LEVEL = LogLevelInfo
var GLOBAL_LOG_CATEGORIES = LogPhysics | LogVoxel | LogConfig | LogSimulation

type LogLevel int

const (
	LogLevelError LogLevel = 1 << iota
	LogLevelWarning
	LogLevelDebug
	LogLevelInfo
)

type LogCategory int

const (
	LogPhysics LogCategory = 1 << iota
	LogVoxel
	LogConfig
	LogSimulation
)

func log(cat LogCategory, lvl LogLevel, txt string) {
	if lvl > GLOBAL_LOG_LEVEL {
		return
	}
	if GLOBAL_LOG_CATEGORIES&cat == 0 {
		return
	}
	println(txt)
}

func LogPhysicsDebug(txt string) {
	log(LogPhysics, LogLevelDebug, txt)
}

func LogPhysicsWarning(txt string) {
	log(LogPhysics, LogLevelWarning, txt)
}

func LogVoxelInfo(txt string) {
	log(LogVoxel, LogLevelInfo, txt)
}

func LogVoxelDebug(txt string) {
	log(LogVoxel, LogLevelDebug, txt)
}

func LogVoxelError(txt string) {
	log(LogVoxel, LogLevelError, txt)
}

func LogConfigInfo(txt string) {
	log(LogConfig, LogLevelInfo, txt)
}

func LogConfigError(txt string) {
	log(LogConfig, LogLevelError, txt)
}

func LogSimInfo(txt string) {
	log(LogSimulation, LogLevelInfo, txt)
}

func LogSimDebug(txt string) {
	log(LogSimulation, LogLevelDebug, txt)
}
