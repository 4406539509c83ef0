package searcher

// Hyperparameters for SARSA training

const DefaultValue = 0.1 // Value of a board the table has never seen

const LearningRate = 0.1   // Step size of each update
const DiscountFactor = 0.1 // Weight on the look-ahead value
