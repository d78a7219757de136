package logger

const GameReadyMsg = "球場 %.0fx%.0f 已就緒, best score: %d"
const StartIgnoredMsg = "回合進行中 (%s), 忽略開始"
const RoundStartMsg = "回合 %s 開始倒數"
const RoundRunningMsg = "回合 %s 開始!"
const LevelUpMsg = "回合 %s 升級到 level %d"
const RoundOverMsg = "回合 %s 結束, score: %d, bounces: %d, level: %d"
const ResizeDeferredMsg = "回合進行中, 球場 %.0fx%.0f 延後套用 (%s)"

const BestScoreLoadFailMsg = "讀取最高分失敗: %v"
const BestScoreSaveFailMsg = "儲存最高分 %d 失敗: %v"

const ScreenInitFailMsg = "終端機初始化失敗: %v"
const ConfigLoadMsg = "讀取設定檔 %s"
const QuitMsg = "玩家離開遊戲"
