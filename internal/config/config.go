package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06
	TickRate     = 60 // Тиков в секунду, относительно которых заданы скорости исходных прототипов

	// Камера: пикселей на мировую единицу. Растёт медленнее, чем тело,
	// поэтому большое тело видит больше мира.
	BaseZoom        = 4.0
	MinZoom         = 1.5
	ZoomPerPart     = 0.02
	ZoomLerp        = 0.1
	CameraLerp      = 0.1
	SpriteSize      = 8 // Пикселей в стороне спрайта при масштабе 1
	SpriteOverscale = 8.0

	PartSpacing = 8.0 // Шаг сетки частей внутри тела

	PlayerSpeed        = 60.0
	HealthPerPart      = 10
	AimLerpBase        = 0.1
	StartObjectsSpread = 100.0
	StartDebrisCount   = 5

	ProjectileSpeed        = 120.0
	ProjectileSize         = 2.0
	ProjectileHitRadius    = 5.0
	ForcefieldRadius       = 18.0
	ProjectileCullDistance = 1500.0

	VelocityDamping = 0.99 // За один тик с частотой TickRate

	EnemySpeed         = 36.0
	ChaseRange         = 200.0
	ChaseMinDistance   = 8.0
	EnemyCullDistance  = 5000.0
	EnemyCullInterval  = 1.0
	ObjectCullDistance = 3000.0
	SpawnMargin        = 16.0

	AmbientDebrisInterval = 4.0
	AmbientDebrisSpeed    = 30.0

	LootSpeed         = 60.0
	LootSpin          = 6.0
	ExplosionSpeed    = 90.0
	ExplosionMaxParts = 12

	DamageFlashDuration = 0.25
	ZapSegmentSize      = 2.0
	ZapLifetime         = 0.1

	SurvivalBonusInterval = 3.0
	SurvivalBonus         = 10
	ScorePerPart          = 20
	ScorePerKill          = 100

	SoundInterval = 0.05 // Не чаще одного игрового звука за интервал
)

// Символические имена спрайтов
const (
	SpriteDebris     = "debris"
	SpritePlayer     = "player"
	SpriteZapper     = "zapper"
	SpriteCannon     = "cannon"
	SpriteShield     = "shield"
	SpriteForcefield = "forcefield"
)

var (
	BackgroundColor  = color.RGBA{20, 17, 18, 255}
	BackgroundMedium = color.RGBA{69, 61, 62, 255}
	BackgroundLight  = color.RGBA{118, 116, 117, 255}
	ForegroundColor  = color.RGBA{192, 192, 192, 255}
	AccentColor      = color.RGBA{249, 72, 64, 255}
	ZapColor         = color.RGBA{255, 255, 0, 255}
	PlayerShotColor  = color.RGBA{255, 255, 0, 255}
	EnemyShotColor   = color.RGBA{255, 0, 0, 255}
	DamageFlashColor = color.RGBA{255, 80, 80, 255}
	StarColor        = color.RGBA{90, 90, 110, 255}
)
