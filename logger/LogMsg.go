package logger

const MatchStartMsg = "比賽開始 match:%s 模式:%s"
const MatchStopMsg = "比賽中止 match:%s"
const PointScoredMsg = "%s 得分 match:%s %s"
const GameOverMsg = "遊戲結束 match:%s 勝利者:%s %s"
const PaddleHitMsg = "%s 擊中球 match:%s dx:%.3f dy:%.3f"
const BattleStateMsg = "比賽狀態 match:%s %s"

const ArenaConfiguredMsg = "場地尺寸更新 %.1fx%.1f"
const TuningReloadMsg = "遊戲參數已重新載入 env:%s"
const TuningReloadFailedMsg = "遊戲參數重新載入失敗 env:%s err:%v"

const ScreenResizeMsg = "畫面尺寸變更 %dx%d"
const ClientQuitMsg = "玩家離開遊戲"
