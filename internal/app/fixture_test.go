package service_test

// sampleRoster is the 19-player regression fixture. The golden totals in
// the tests are pinned against these exact rows.
const sampleRoster = `Player,Position,Score,Salary,Age,Goals,Assists,PIM,PPP,SOG
Auden Kask,C,88.5,"9,500,000",29,38,52,24,28,265
Bram Holt,LW,81.0,"7,800,000",27,34,36,40,20,240
Casper Rand,RW,77.25,"7,000,000",31,30,32,52,18,228
Davor Ilic,D,70.5,"6,500,000",26,10,42,36,16,150
Emil Varga,"C,LW",69.0,"6,200,000",24,26,30,18,14,206
Farid Nazar,RW,66.75,"5,800,000",28,25,27,30,12,199
Gideon Pace,D,64.0,"5,500,000",30,8,34,44,10,141
Henrik Juhl,"LW,RW",62.5,"5,200,000",25,22,26,22,11,188
Ivo Brandt,C,60.0,"4,900,000",23,20,25,16,9,175
Jonas Ekdal,D,57.5,"4,600,000",29,6,28,38,8,120
Kalle Ruud,LW,55.0,"4,300,000",26,18,21,26,7,166
Lev Marek,"C,RW",52.25,"4,000,000",22,16,19,12,6,158
Milan Novak,D,49.5,"3,700,000",27,5,22,30,5,104
Nils Ohman,RW,47.0,"3,400,000",24,14,16,20,4,147
Otto Lindt,LW,44.5,"3,100,000",21,12,14,14,3,139
Pavel Cerny,D,42.0,"2,800,000",28,4,17,26,2,92
Rasmus Dahl,C,39.25,"2,500,000",20,10,12,8,1,128
Stefan Roth,G,36.5,"2,200,000",32,0,2,4,0,0
Tomas Vik,"D,RW",33.0,"1,900,000",19,3,9,10,1,85
`
